// internal/pkg/email/service_test.go
package email

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/webshop-backend/internal/config"
	"github.com/your-org/webshop-backend/internal/domain/report"
)

func testConfig() *config.Config {
	return &config.Config{
		Email: config.EmailConfig{
			Provider: "resend",
			FromName: "Webshop",
		},
		Report: config.ReportConfig{
			AdminEmail: "admin@example.com",
		},
	}
}

func TestReportSummaryData(t *testing.T) {
	s := NewEmailService(testConfig())

	r := &report.Report{
		PeriodLabel: "Napi",
		Range: report.DateRange{
			Start: time.Date(2026, time.August, 28, 0, 0, 0, 0, time.Local),
			End:   time.Date(2026, time.August, 29, 23, 59, 59, 0, time.Local),
		},
		Revenue: report.RevenueStats{Total: 1234567, Change: 12},
		Orders:  report.OrderStats{Total: 42, Change: -5, AverageValue: 29394},
		Users:   report.UserStats{New: 3},
	}

	data := s.reportSummaryData(r, "admin@example.com")

	assert.Equal(t, "Napi", data.PeriodLabel)
	assert.Equal(t, "2026. augusztus 28.", data.RangeStart)
	assert.Equal(t, "2026. augusztus 29.", data.RangeEnd)
	assert.Equal(t, "1 234 567 Ft", data.TotalRevenue)
	assert.Equal(t, "12%", data.RevenueChange)
	assert.Equal(t, 42, data.OrderCount)
	assert.Equal(t, "-5%", data.OrderChange)
	assert.Equal(t, "29 394 Ft", data.AverageOrder)
	assert.Equal(t, int64(3), data.NewUsers)
	assert.Equal(t, "admin@example.com", data.UserEmail)
}

func TestReportSummaryTemplateRenders(t *testing.T) {
	s := NewEmailService(testConfig())

	r := &report.Report{
		PeriodLabel: "Heti",
		Range: report.DateRange{
			Start: time.Date(2026, time.August, 22, 0, 0, 0, 0, time.Local),
			End:   time.Date(2026, time.August, 29, 23, 59, 59, 0, time.Local),
		},
		Orders: report.OrderStats{Total: 7, AverageValue: 15000},
	}

	html, err := s.renderTemplate("report_summary", s.reportSummaryData(r, "admin@example.com"))
	require.NoError(t, err)

	assert.Contains(t, html, "Heti")
	assert.Contains(t, html, "15 000 Ft")
}
