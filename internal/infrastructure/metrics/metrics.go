package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CrowdfundingMetrics covers the two submission flows.
type CrowdfundingMetrics struct {
	CampaignsStartedTotal     prometheus.CounterVec
	CampaignAmountNeededTotal prometheus.CounterVec
	ContributionsTotal        prometheus.CounterVec
	ContributionAmountTotal   prometheus.CounterVec
	ValidationErrorsTotal     prometheus.CounterVec
	CollaboratorErrorsTotal   prometheus.CounterVec
}

func NewCrowdfundingMetrics() *CrowdfundingMetrics {
	return &CrowdfundingMetrics{
		CampaignsStartedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crowdfunding_campaigns_started_total",
				Help: "Number of crowdfunding campaigns started",
			},
			[]string{"kind"},
		),
		CampaignAmountNeededTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crowdfunding_campaign_amount_needed_total",
				Help: "Sum of funding targets of started campaigns",
			},
			[]string{"kind"},
		),
		ContributionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crowdfunding_contributions_total",
				Help: "Number of contributions received",
			},
			[]string{"method"},
		),
		ContributionAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crowdfunding_contribution_amount_total",
				Help: "Sum of contribution amounts received",
			},
			[]string{"method"},
		),
		ValidationErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crowdfunding_validation_errors_total",
				Help: "Number of rejected submissions per form",
			},
			[]string{"form"},
		),
		CollaboratorErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crowdfunding_collaborator_errors_total",
				Help: "Number of failed calls to external collaborators",
			},
			[]string{"collaborator"},
		),
	}
}

func (m *CrowdfundingMetrics) RecordCampaignStarted(kind string, amountNeeded float64) {
	m.CampaignsStartedTotal.WithLabelValues(kind).Inc()
	m.CampaignAmountNeededTotal.WithLabelValues(kind).Add(amountNeeded)
}

func (m *CrowdfundingMetrics) RecordContribution(method string, amount float64) {
	m.ContributionsTotal.WithLabelValues(method).Inc()
	m.ContributionAmountTotal.WithLabelValues(method).Add(amount)
}

func (m *CrowdfundingMetrics) RecordValidationError(form string) {
	m.ValidationErrorsTotal.WithLabelValues(form).Inc()
}

func (m *CrowdfundingMetrics) RecordCollaboratorError(collaborator string) {
	m.CollaboratorErrorsTotal.WithLabelValues(collaborator).Inc()
}
