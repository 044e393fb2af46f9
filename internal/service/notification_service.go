package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/healthtracker/internal/error_values"
	"github.com/limbo/healthtracker/internal/repository"
	"github.com/limbo/healthtracker/pkg/entity"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const appSignature = "- Health Tracker"

var numberPrinter = message.NewPrinter(language.English)

type NotificationService struct {
	users    repository.UsersRepositoryI
	notifier Notifier
}

// NewNotificationService builds the service. With a nil notifier every send
// fails with ErrFeatureDisabled.
func NewNotificationService(usersRepo repository.UsersRepositoryI, notifier Notifier) *NotificationService {
	return &NotificationService{
		users:    usersRepo,
		notifier: notifier,
	}
}

func (ns *NotificationService) SendDailyReminder(ctx context.Context, uid uuid.UUID) (string, error) {
	return ns.send(ctx, uid, func(name string) string {
		return strings.Join([]string{
			"Health Tracker Reminder",
			"",
			"Hi " + name + "!",
			"",
			"Don't forget to log your health stats today:",
			"- Steps",
			"- Calories",
			"- Heart rate",
			"- Sleep hours",
			"- Water intake",
			"",
			"Keep up your streak!",
			"",
			appSignature,
		}, "\n")
	})
}

func (ns *NotificationService) SendWeeklySummary(ctx context.Context, uid uuid.UUID, stats entity.AggregatedStats) (string, error) {
	return ns.send(ctx, uid, func(name string) string {
		return strings.Join([]string{
			"Weekly Health Summary",
			"",
			"Hi " + name + "! Here's your weekly progress:",
			"",
			"Avg Steps: " + groupThousands(stats.AvgSteps),
			"Avg Calories: " + groupThousands(stats.AvgCalories),
			"Avg Heart Rate: " + strconv.Itoa(stats.AvgHeartRate) + " bpm",
			"Avg Sleep: " + strconv.FormatFloat(stats.AvgSleep, 'f', -1, 64) + " hrs",
			"Avg Water: " + strconv.FormatFloat(stats.AvgWater, 'f', -1, 64) + " glasses",
			"",
			"Great work! Keep it up!",
			"",
			appSignature,
		}, "\n")
	})
}

func (ns *NotificationService) SendStreakReminder(ctx context.Context, uid uuid.UUID, streak int) (string, error) {
	return ns.send(ctx, uid, func(name string) string {
		return strings.Join([]string{
			"Streak Alert!",
			"",
			fmt.Sprintf("Amazing %s! You're on a %d-day streak!", name, streak),
			"",
			"Don't break the chain - log your health data today!",
			"",
			appSignature,
		}, "\n")
	})
}

func (ns *NotificationService) SendMilestone(ctx context.Context, uid uuid.UUID, milestone string) error {
	_, err := ns.send(ctx, uid, func(name string) string {
		return strings.Join([]string{
			"Congratulations " + name + "!",
			"",
			"You've achieved a new milestone:",
			milestone,
			"",
			"Keep crushing your health goals!",
			"",
			appSignature,
		}, "\n")
	})
	return err
}

func (ns *NotificationService) send(ctx context.Context, uid uuid.UUID, body func(name string) string) (string, error) {
	if ns.notifier == nil {
		return "", errorvalues.ErrFeatureDisabled
	}
	user, err := ns.users.FindByID(ctx, uid)
	if err != nil {
		return "", fmt.Errorf("repository searching error: %w", err)
	}
	if user.Phone == "" {
		return "", errorvalues.ErrNoPhone
	}
	sid, err := ns.notifier.SendSMS(ctx, user.Phone, body(user.Name))
	if err != nil {
		return "", fmt.Errorf("sending sms error: %w", err)
	}
	return sid, nil
}

// groupThousands formats 12345 as "12,345".
func groupThousands(n int) string {
	return numberPrinter.Sprintf("%d", n)
}
