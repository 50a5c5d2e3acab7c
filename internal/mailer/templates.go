package mailer

import (
	"bytes"
	"html/template"
)

const (
	TemplateOffer    = "offer"
	TemplatePositive = "positive"
	TemplateNegative = "negative"
	TemplateInvite   = "invite"
)

// Body parameters shared by the candidate-result templates.
type resultParams struct {
	CandidateName string
	PositionTitle string
	CompanyName   string
	Note          string
}

type inviteParams struct {
	Name         string
	TempPassword string
}

var bodyTemplates = template.Must(template.New("mail").Parse(`
{{define "offer"}}
<p>Sayın {{.CandidateName}},</p>
<p>{{.CompanyName}} firmasındaki <strong>{{.PositionTitle}}</strong> pozisyonu için size bir iş teklifi iletmekten mutluluk duyarız.</p>
{{if .Note}}<p>{{.Note}}</p>{{end}}
<p>Detaylar için danışmanınızla iletişime geçebilirsiniz.</p>
<p>Saygılarımızla</p>
{{end}}

{{define "positive"}}
<p>Sayın {{.CandidateName}},</p>
<p>{{.CompanyName}} firmasındaki <strong>{{.PositionTitle}}</strong> pozisyonu için değerlendirmeniz olumlu sonuçlanmıştır. Süreçle ilgili bir sonraki adım için sizinle iletişime geçeceğiz.</p>
{{if .Note}}<p>{{.Note}}</p>{{end}}
<p>Saygılarımızla</p>
{{end}}

{{define "negative"}}
<p>Sayın {{.CandidateName}},</p>
<p>{{.CompanyName}} firmasındaki <strong>{{.PositionTitle}}</strong> pozisyonu için değerlendirmeniz maalesef olumsuz sonuçlanmıştır. Profilinize uygun yeni pozisyonlarda sizi tekrar değerlendirmekten memnuniyet duyarız.</p>
{{if .Note}}<p>{{.Note}}</p>{{end}}
<p>Saygılarımızla</p>
{{end}}

{{define "invite"}}
<p>Merhaba {{.Name}},</p>
<p>Sizin için bir hesap oluşturuldu. Geçici şifreniz: <strong>{{.TempPassword}}</strong></p>
<p>İlk girişinizde şifrenizi değiştirmenizi rica ederiz.</p>
{{end}}
`))

func renderTemplate(name string, params any) (string, error) {
	var buf bytes.Buffer
	if err := bodyTemplates.ExecuteTemplate(&buf, name, params); err != nil {
		return "", err
	}
	return buf.String(), nil
}
