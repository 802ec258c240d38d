package cli

import "github.com/alexanderramin/tally/internal/app"

func (a *App) recordUseCase() app.RecordHoursUseCase {
	if a.RecordHours != nil {
		return a.RecordHours
	}
	return a.Hours
}

func (a *App) monthSummaryUseCase() app.MonthSummaryUseCase {
	if a.MonthSummary != nil {
		return a.MonthSummary
	}
	return a.Hours
}

func (a *App) importUseCase() app.ImportHoursUseCase {
	if a.ImportHours != nil {
		return a.ImportHours
	}
	return a.Hours
}
