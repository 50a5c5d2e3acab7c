package mailer

// CandidateResultMailRequest is the multipart form a consultant
// submits when reporting an interview result to a candidate. An
// optional file attachment (offer letter, contract) rides along.
type CandidateResultMailRequest struct {
	To            string `form:"to" binding:"required,email"`
	CC            string `form:"cc" binding:"omitempty,max=1000"`
	Result        string `form:"result" binding:"required,oneof=offer positive negative"`
	CandidateName string `form:"candidate_name" binding:"required,max=200"`
	PositionTitle string `form:"position_title" binding:"required,max=200"`
	CompanyName   string `form:"company_name" binding:"required,max=200"`
	Note          string `form:"note" binding:"omitempty,max=2000"`
}

// InviteMailRequest resends the membership invite for an account whose
// first delivery failed.
type InviteMailRequest struct {
	To           string `json:"to" binding:"required,email"`
	Name         string `json:"name" binding:"required,max=200"`
	TempPassword string `json:"temp_password" binding:"required,min=8"`
}

// Attachment is an in-memory file to send along with a mail.
type Attachment struct {
	Filename string
	Content  []byte
}
