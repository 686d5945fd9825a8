// internal/pkg/email/types.go
package email

import (
	"time"
)

// EmailType represents the type of email being sent
type EmailType string

const (
	EmailTypeWelcome           EmailType = "welcome"
	EmailTypeOrderConfirmation EmailType = "order_confirmation"
	EmailTypeOrderCancelled    EmailType = "order_cancelled"
	EmailTypeReportSummary     EmailType = "report_summary"
	EmailTypeNewsletterWelcome EmailType = "newsletter_welcome"
)

// Email represents an email message
type Email struct {
	To          []string               `json:"to"`
	Subject     string                 `json:"subject"`
	HTMLContent string                 `json:"html_content"`
	Type        EmailType              `json:"type"`
	Data        map[string]interface{} `json:"data,omitempty"`
}

// EmailTemplateData contains common data for all email templates
type EmailTemplateData struct {
	SiteName  string `json:"site_name"`
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	Year      int    `json:"year"`
}

// OrderConfirmationData contains data for order confirmation email
type OrderConfirmationData struct {
	EmailTemplateData
	OrderNumber   string      `json:"order_number"`
	OrderDate     string      `json:"order_date"`
	OrderTotal    string      `json:"order_total"`
	PaymentMethod string      `json:"payment_method"`
	Items         []OrderItem `json:"items"`
}

// OrderItem represents an item in the order email
type OrderItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
	Total    string `json:"total"`
}

// ReportSummaryData contains data for the admin report summary email
type ReportSummaryData struct {
	EmailTemplateData
	PeriodLabel   string `json:"period_label"`
	RangeStart    string `json:"range_start"`
	RangeEnd      string `json:"range_end"`
	TotalRevenue  string `json:"total_revenue"`
	RevenueChange string `json:"revenue_change"`
	OrderCount    int    `json:"order_count"`
	OrderChange   string `json:"order_change"`
	AverageOrder  string `json:"average_order"`
	NewUsers      int64  `json:"new_users"`
}

// GetBaseTemplateData returns common template data
func GetBaseTemplateData(siteName, userName, userEmail string) EmailTemplateData {
	return EmailTemplateData{
		SiteName:  siteName,
		UserName:  userName,
		UserEmail: userEmail,
		Year:      time.Now().Year(),
	}
}
