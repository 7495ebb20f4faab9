package dto

import (
	"github.com/coopportal/coopportal/internal/domain/coop"
	"github.com/coopportal/coopportal/internal/domain/grade"
	"github.com/coopportal/coopportal/internal/validator"
	"github.com/shopspring/decimal"
)

type ReportType string

const (
	ReportTypeGradeDistribution ReportType = "grade_distribution"
	ReportTypeCoopStatus        ReportType = "coop_status"
)

// GenerateReportRequest selects which typed report to build.
type GenerateReportRequest struct {
	ReportType ReportType `json:"report_type" binding:"required" validate:"required,oneof=grade_distribution coop_status"`
}

func (r *GenerateReportRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// ComplianceSummaryResponse is the standing admin report.
type ComplianceSummaryResponse struct {
	TotalStudents int             `json:"total_students"`
	TotalCoops    int             `json:"total_coops"`
	AvgGrade      decimal.Decimal `json:"avg_grade"`
}

// ReportResponse carries one typed report; exactly one payload field is set.
type ReportResponse struct {
	ReportType        ReportType           `json:"report_type"`
	GradeDistribution []*grade.CourseStats `json:"grade_distribution,omitempty"`
	CoopStatus        []*coop.CompanyStats `json:"coop_status,omitempty"`
}
