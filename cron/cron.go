package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/VeloF2025/Life-Arrow-V1-sub003/db"
	"github.com/VeloF2025/Life-Arrow-V1-sub003/models"
	"github.com/VeloF2025/Life-Arrow-V1-sub003/redis"
	"github.com/VeloF2025/Life-Arrow-V1-sub003/utils"
	"github.com/robfig/cron/v3"
)

// reminderLead is how far ahead of the start time clients get their reminder.
const reminderLead = 24 * time.Hour

// InitCron starts the background scheduler. Currently one job: the reminder
// sweep every 15 minutes.
func InitCron() *cron.Cron {
	c := cron.New()
	if _, err := c.AddFunc("*/15 * * * *", sendReminders); err != nil {
		log.Fatalf("failed to schedule reminder sweep: %v", err)
	}
	c.Start()
	log.Println("Cron scheduler started")
	return c
}

// sendReminders mails every client whose appointment starts within the lead
// window. A Redis marker per appointment keeps overlapping sweeps from sending
// twice.
func sendReminders() {
	now := time.Now()
	windowEnd := now.Add(reminderLead)

	var appointments []models.Appointment
	err := db.DB.Preload("Client").Preload("Staff").Preload("Service").Preload("Centre").
		Where("status IN ?", []models.AppointmentStatus{models.StatusScheduled, models.StatusConfirmed}).
		Where("start_time > ? AND start_time <= ?", now, windowEnd).
		Find(&appointments).Error
	if err != nil {
		log.Printf("reminder sweep query failed: %v", err)
		return
	}

	ctx := context.Background()
	for _, appt := range appointments {
		key := fmt.Sprintf("reminder:appointment:%d", appt.ID)
		first, err := redis.MarkOnce(ctx, key, reminderLead+time.Hour)
		if err != nil {
			log.Printf("reminder dedupe failed for appointment %d: %v", appt.ID, err)
			continue
		}
		if !first {
			continue
		}

		if appt.Client.Email == "" {
			continue
		}
		subject := fmt.Sprintf("Reminder: %s on %s", appt.Service.Name, appt.StartTime.Format("Mon 2 Jan at 15:04"))
		body := fmt.Sprintf(
			"<h2>Appointment Reminder</h2>"+
				"<p>Hi %s,</p>"+
				"<p>This is a reminder for your upcoming appointment:</p>"+
				"<ul>"+
				"<li><b>Service:</b> %s</li>"+
				"<li><b>With:</b> %s</li>"+
				"<li><b>Centre:</b> %s</li>"+
				"<li><b>When:</b> %s</li>"+
				"</ul>"+
				"<p>If you need to change it, please do so at least 24 hours before the start time.</p>",
			appt.Client.FirstName,
			appt.Service.Name,
			appt.Staff.Name,
			appt.Centre.Name,
			appt.StartTime.Format("Monday, 2 January 2006 at 15:04"),
		)
		if err := utils.SendEmail(appt.Client.Email, subject, body); err != nil {
			log.Printf("reminder mail failed for appointment %d: %v", appt.ID, err)
		}
	}
}
