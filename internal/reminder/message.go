package reminder

import (
	"strings"

	"github.com/jailbreak-0/iou-tracker/internal/models"
)

// Message renders the notification title and body for a record from the
// policy's message template. Placeholders: {name}, {type}, {amount}.
func Message(rec models.DebtRecord, policy models.ReminderPolicy) (title, body string) {
	tpl := policy.MessageTemplate
	if tpl == "" {
		tpl = models.DefaultReminderPolicy().MessageTemplate
	}

	r := strings.NewReplacer(
		"{name}", rec.CounterpartyName,
		"{type}", rec.Direction.Label(),
		"{amount}", rec.Amount.StringFixed(2),
	)
	return "Debt reminder", r.Replace(tpl)
}
