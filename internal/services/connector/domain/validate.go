package domain

import (
	"umamiconnector/internal/core/report"
	"umamiconnector/internal/platform/net/http/bind"
)

// TagReportDate validates a date range bound
const TagReportDate = "report_date"

func init() {
	err := bind.RegisterTag(TagReportDate, func(fl bind.FieldLevel) bool {
		s, ok := fl.Field().Interface().(string)
		return ok && report.IsDate(s)
	}, "{0} must be a date like 2006-01-02")
	if err != nil {
		panic(err)
	}
}
