package ses

import (
	"context"
	"fmt"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"misportal/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
	frontendURL string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName, frontendURL string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
		frontendURL: frontendURL,
	}, nil
}

func (s *sesSender) send(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func (s *sesSender) SendUploadDecisionEmail(ctx context.Context, msg port.DecisionEmail) error {
	verdict := "approved"
	if !msg.Approved {
		verdict = "rejected"
	}
	month := time.Month(msg.Month).String()

	subject := fmt.Sprintf("Your %s MIS upload was %s", month, verdict)
	textBody := fmt.Sprintf(
		"Hi %s,\n\nYour %s upload %q for the %s department has been %s.",
		msg.ToName, month, msg.FileName, msg.Department, verdict)
	if msg.Note != "" {
		textBody += fmt.Sprintf("\n\nReviewer note: %s", msg.Note)
	}
	textBody += fmt.Sprintf("\n\nView your uploads at %s/uploads\n\nMIS Portal", s.frontendURL)

	return s.send(ctx, msg.ToEmail, subject, buildDecisionHTML(msg, verdict, month, s.frontendURL), textBody)
}

func (s *sesSender) SendWindowReminderEmail(ctx context.Context, msg port.ReminderEmail) error {
	month := time.Month(msg.Month).String()

	subject := fmt.Sprintf("Reminder: %s MIS report for %s not yet submitted", month, msg.Department)
	textBody := fmt.Sprintf(
		"Hi %s,\n\nThe %s department has not yet submitted its MIS report for %s. The upload window closes on day %d of the month.\n\nSubmit at %s/uploads\n\nMIS Portal",
		msg.ToName, msg.Department, month, msg.CloseDay, s.frontendURL)

	return s.send(ctx, msg.ToEmail, subject, buildReminderHTML(msg, month, s.frontendURL), textBody)
}

func buildDecisionHTML(msg port.DecisionEmail, verdict, month, frontendURL string) string {
	color := "#16A34A"
	if !msg.Approved {
		color = "#DC2626"
	}
	note := ""
	if msg.Note != "" {
		note = fmt.Sprintf(`<p><strong>Reviewer note:</strong> %s</p>`, msg.Note)
	}
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: %s;">Upload %s</h2>
  <p>Hi %s,</p>
  <p>Your %s upload <strong>%s</strong> for the %s department has been %s.</p>
  %s
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s/uploads" style="background-color: #4F46E5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">View Uploads</a>
  </p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">MIS Portal</p>
</body>
</html>`, color, verdict, msg.ToName, month, msg.FileName, msg.Department, verdict, note, frontendURL)
}

func buildReminderHTML(msg port.ReminderEmail, month, frontendURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">MIS report pending</h2>
  <p>Hi %s,</p>
  <p>The <strong>%s</strong> department has not yet submitted its MIS report for %s. The upload window closes on day %d of the month.</p>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s/uploads" style="background-color: #4F46E5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Submit Report</a>
  </p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">MIS Portal</p>
</body>
</html>`, msg.ToName, msg.Department, month, msg.CloseDay, frontendURL)
}
