// Package jobs provides scheduled background tasks for the order engine.
//
// Jobs run on cron schedules via github.com/robfig/cron/v3 and are managed
// through JobManager:
//
//	jobManager := jobs.NewJobManager(overdueOrdersHandler, publisher, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// OverdueDeliveryJob runs at the top of every minute, scanning for in-progress
// orders past their expected delivery date and publishing a delivery_overdue
// event per late order. The scan is read-only and idempotent: an order stays
// overdue, and keeps producing events, until the seller delivers or a party
// cancels.
package jobs
