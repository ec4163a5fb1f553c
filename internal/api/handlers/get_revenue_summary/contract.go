package get_revenue_summary

import "context"

type AppointmentsService interface {
	RevenueSummary(ctx context.Context, barbershopID *string) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
