package mailer

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type recordingDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *recordingDialer) DialAndSend(m ...*gomail.Message) error {
	if d.err != nil {
		return d.err
	}
	d.sent = append(d.sent, m...)
	return nil
}

func messageBody(t *testing.T, m *gomail.Message) string {
	t.Helper()
	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	return buf.String()
}

func TestSendInvite_RendersTemplate(t *testing.T) {
	dialer := &recordingDialer{}
	svc := NewService(dialer, nil)

	require.NoError(t, svc.SendInvite(context.Background(), "yeni@example.com", "Zeynep", "gecici123"))
	require.Len(t, dialer.sent, 1)

	raw := messageBody(t, dialer.sent[0])
	assert.Contains(t, raw, "To: yeni@example.com")
	assert.Contains(t, raw, "gecici123")
}

func TestSendCandidateResult_TemplatesByResult(t *testing.T) {
	for _, result := range []string{TemplateOffer, TemplatePositive, TemplateNegative} {
		dialer := &recordingDialer{}
		svc := NewService(dialer, nil)

		err := svc.SendCandidateResult(context.Background(), "", CandidateResultMailRequest{
			To:            "aday@example.com",
			Result:        result,
			CandidateName: "Ayşe Yılmaz",
			PositionTitle: "Operatör",
			CompanyName:   "Acme",
		}, nil)
		require.NoError(t, err, result)
		require.Len(t, dialer.sent, 1, result)
	}
}

func TestSendCandidateResult_CCAndAttachment(t *testing.T) {
	dialer := &recordingDialer{}
	svc := NewService(dialer, nil)

	err := svc.SendCandidateResult(context.Background(), "", CandidateResultMailRequest{
		To:            "aday@example.com",
		CC:            "danisman@example.com, yonetici@example.com",
		Result:        TemplateOffer,
		CandidateName: "Ayşe Yılmaz",
		PositionTitle: "Operatör",
		CompanyName:   "Acme",
	}, &Attachment{Filename: "teklif.pdf", Content: []byte("%PDF-1.4 teklif")})
	require.NoError(t, err)
	require.Len(t, dialer.sent, 1)

	raw := messageBody(t, dialer.sent[0])
	assert.Contains(t, raw, "Cc: danisman@example.com, yonetici@example.com")
	assert.Contains(t, raw, `filename="teklif.pdf"`)
	assert.True(t, strings.Contains(raw, "multipart/mixed"))
}

func TestSend_DialFailureReturnsError(t *testing.T) {
	dialer := &recordingDialer{err: errors.New("connection refused")}
	svc := NewService(dialer, nil)

	err := svc.SendInvite(context.Background(), "yeni@example.com", "Zeynep", "gecici123")
	assert.Error(t, err)
}
