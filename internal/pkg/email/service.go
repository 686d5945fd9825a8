// internal/pkg/email/service.go
package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/your-org/webshop-backend/internal/config"
	"github.com/your-org/webshop-backend/internal/domain/report"
)

// EmailService handles all email operations
type EmailService struct {
	config    *config.Config
	templates map[string]*template.Template
	client    *http.Client
}

// NewEmailService creates a new email service
func NewEmailService(cfg *config.Config) *EmailService {
	service := &EmailService{
		config: cfg,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	service.templates = map[string]*template.Template{
		"welcome":            template.Must(template.New("welcome").Parse(welcomeTemplate)),
		"order_confirmation": template.Must(template.New("order_confirmation").Parse(orderConfirmationTemplate)),
		"report_summary":     template.Must(template.New("report_summary").Parse(reportSummaryTemplate)),
	}
	return service
}

// SendEmail sends an email using the configured provider
func (s *EmailService) SendEmail(ctx context.Context, email *Email) error {
	switch s.config.Email.Provider {
	case "smtp":
		return s.sendSMTPEmail(email)
	case "resend":
		return s.sendResendEmail(ctx, email)
	default:
		return fmt.Errorf("unsupported email provider: %s", s.config.Email.Provider)
	}
}

// SendWelcomeEmail sends a welcome email to new users
func (s *EmailService) SendWelcomeEmail(ctx context.Context, userEmail, userName string) error {
	data := GetBaseTemplateData(s.config.Email.FromName, userName, userEmail)

	htmlContent, err := s.renderTemplate("welcome", data)
	if err != nil {
		return fmt.Errorf("failed to render welcome email template: %w", err)
	}

	email := &Email{
		To:          []string{userEmail},
		Subject:     fmt.Sprintf("Üdvözlünk a(z) %s webáruházban!", s.config.Email.FromName),
		HTMLContent: htmlContent,
		Type:        EmailTypeWelcome,
		Data:        map[string]interface{}{"user_name": userName},
	}

	return s.SendEmail(ctx, email)
}

// SendOrderConfirmationEmail sends order confirmation email
func (s *EmailService) SendOrderConfirmationEmail(ctx context.Context, data OrderConfirmationData) error {
	data.EmailTemplateData = GetBaseTemplateData(s.config.Email.FromName, data.UserName, data.UserEmail)

	htmlContent, err := s.renderTemplate("order_confirmation", data)
	if err != nil {
		return fmt.Errorf("failed to render order confirmation template: %w", err)
	}

	email := &Email{
		To:          []string{data.UserEmail},
		Subject:     fmt.Sprintf("Rendelés visszaigazolás - %s", data.OrderNumber),
		HTMLContent: htmlContent,
		Type:        EmailTypeOrderConfirmation,
		Data: map[string]interface{}{
			"order_number": data.OrderNumber,
		},
	}

	return s.SendEmail(ctx, email)
}

// SendReportSummaryEmail sends a generated report summary to the admin address
func (s *EmailService) SendReportSummaryEmail(ctx context.Context, r *report.Report) error {
	adminEmail := s.config.Report.AdminEmail
	if adminEmail == "" {
		return fmt.Errorf("report admin email not configured")
	}

	data := s.reportSummaryData(r, adminEmail)

	htmlContent, err := s.renderTemplate("report_summary", data)
	if err != nil {
		return fmt.Errorf("failed to render report summary template: %w", err)
	}

	email := &Email{
		To:          []string{adminEmail},
		Subject:     fmt.Sprintf("%s riport - %s", r.PeriodLabel, report.FormatDateLong(r.Range.End)),
		HTMLContent: htmlContent,
		Type:        EmailTypeReportSummary,
	}

	return s.SendEmail(ctx, email)
}

// reportSummaryData maps a report onto the summary template fields, formatting
// all amounts and percentages up front
func (s *EmailService) reportSummaryData(r *report.Report, adminEmail string) ReportSummaryData {
	return ReportSummaryData{
		EmailTemplateData: GetBaseTemplateData(s.config.Email.FromName, "Admin", adminEmail),
		PeriodLabel:       r.PeriodLabel,
		RangeStart:        report.FormatDateLong(r.Range.Start),
		RangeEnd:          report.FormatDateLong(r.Range.End),
		TotalRevenue:      report.FormatCurrency(r.Revenue.Total),
		RevenueChange:     report.FormatPercent(r.Revenue.Change),
		OrderCount:        r.Orders.Total,
		OrderChange:       report.FormatPercent(r.Orders.Change),
		AverageOrder:      report.FormatCurrency(r.Orders.AverageValue),
		NewUsers:          r.Users.New,
	}
}

// renderTemplate renders an email template with data
func (s *EmailService) renderTemplate(templateName string, data interface{}) (string, error) {
	tmpl, exists := s.templates[templateName]
	if !exists {
		return "", fmt.Errorf("template %s not found", templateName)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", templateName, err)
	}

	return buf.String(), nil
}

const welcomeTemplate = `
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>{{.SiteName}}</title></head>
<body style="font-family: Arial, sans-serif; margin: 0; padding: 20px; background-color: #f4f4f4;">
    <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 20px; border-radius: 8px;">
        <h1 style="color: #333;">{{.SiteName}}</h1>
        <p>Kedves {{.UserName}}!</p>
        <p>Köszönjük a regisztrációt, örülünk, hogy csatlakoztál hozzánk.</p>
        <p>Üdvözlettel,<br>{{.SiteName}} csapata</p>
        <hr>
        <p style="font-size: 12px; color: #666;">© {{.Year}} {{.SiteName}}. Minden jog fenntartva.</p>
    </div>
</body>
</html>`

const orderConfirmationTemplate = `
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Rendelés visszaigazolás</title></head>
<body style="font-family: Arial, sans-serif; margin: 0; padding: 20px; background-color: #f4f4f4;">
    <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 20px; border-radius: 8px;">
        <h1 style="color: #333;">{{.SiteName}}</h1>
        <p>Kedves {{.UserName}}!</p>
        <p>Köszönjük a rendelésed! Rendelésszám: <strong>{{.OrderNumber}}</strong> ({{.OrderDate}})</p>
        <table style="width: 100%; border-collapse: collapse;">
            <tr style="background-color: #f8f9fa;">
                <th style="text-align: left; padding: 8px;">Termék</th>
                <th style="text-align: right; padding: 8px;">Db</th>
                <th style="text-align: right; padding: 8px;">Ár</th>
                <th style="text-align: right; padding: 8px;">Összesen</th>
            </tr>
            {{range .Items}}
            <tr>
                <td style="padding: 8px; border-bottom: 1px solid #eee;">{{.Name}}</td>
                <td style="padding: 8px; border-bottom: 1px solid #eee; text-align: right;">{{.Quantity}}</td>
                <td style="padding: 8px; border-bottom: 1px solid #eee; text-align: right;">{{.Price}}</td>
                <td style="padding: 8px; border-bottom: 1px solid #eee; text-align: right;">{{.Total}}</td>
            </tr>
            {{end}}
        </table>
        <p style="text-align: right; font-size: 18px;"><strong>Fizetendő: {{.OrderTotal}}</strong></p>
        <p>Fizetési mód: {{.PaymentMethod}}</p>
        <hr>
        <p style="font-size: 12px; color: #666;">© {{.Year}} {{.SiteName}}. Minden jog fenntartva.</p>
    </div>
</body>
</html>`

const reportSummaryTemplate = `
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>{{.PeriodLabel}} riport</title></head>
<body style="font-family: Arial, sans-serif; margin: 0; padding: 20px; background-color: #f4f4f4;">
    <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 20px; border-radius: 8px;">
        <h1 style="color: #333;">{{.PeriodLabel}} riport</h1>
        <p>Időszak: {{.RangeStart}} - {{.RangeEnd}}</p>
        <table style="width: 100%; border-collapse: collapse;">
            <tr>
                <td style="padding: 8px; border-bottom: 1px solid #eee;">Nettó bevétel</td>
                <td style="padding: 8px; border-bottom: 1px solid #eee; text-align: right;"><strong>{{.TotalRevenue}}</strong> ({{.RevenueChange}})</td>
            </tr>
            <tr>
                <td style="padding: 8px; border-bottom: 1px solid #eee;">Rendelések</td>
                <td style="padding: 8px; border-bottom: 1px solid #eee; text-align: right;"><strong>{{.OrderCount}}</strong> ({{.OrderChange}})</td>
            </tr>
            <tr>
                <td style="padding: 8px; border-bottom: 1px solid #eee;">Átlagos kosárérték</td>
                <td style="padding: 8px; border-bottom: 1px solid #eee; text-align: right;"><strong>{{.AverageOrder}}</strong></td>
            </tr>
            <tr>
                <td style="padding: 8px; border-bottom: 1px solid #eee;">Új regisztrálók</td>
                <td style="padding: 8px; border-bottom: 1px solid #eee; text-align: right;"><strong>{{.NewUsers}}</strong></td>
            </tr>
        </table>
        <hr>
        <p style="font-size: 12px; color: #666;">© {{.Year}} {{.SiteName}}.</p>
    </div>
</body>
</html>`
