// Package insight contains the deterministic daily-content selector.
package insight

import (
	"time"

	"github.com/Huskyauto/Weightlossapp/internal/domain/entity"
)

type quote struct {
	text   string
	author string
}

// The three content lists rotate independently: each is indexed by
// day-of-year modulo its own length, so the combined pattern repeats only
// after the LCM of the list lengths in days.
var quotes = []quote{
	{"The only bad workout is the one that didn't happen.", "Unknown"},
	{"Take care of your body. It's the only place you have to live.", "Jim Rohn"},
	{"Your body can stand almost anything. It's your mind you have to convince.", "Unknown"},
	{"The groundwork for all happiness is good health.", "Leigh Hunt"},
	{"Success is the sum of small efforts repeated day in and day out.", "Robert Collier"},
	{"Don't wish for it, work for it.", "Unknown"},
	{"The body achieves what the mind believes.", "Unknown"},
	{"Strive for progress, not perfection.", "Unknown"},
	{"You don't have to be extreme, just consistent.", "Unknown"},
	{"The secret of getting ahead is getting started.", "Mark Twain"},
}

var tips = []string{
	"Drink a glass of water before each meal to help control portion sizes.",
	"Prepare healthy snacks in advance to avoid reaching for unhealthy options.",
	"Track your food intake honestly - even small bites add up!",
	"Get at least 7-8 hours of sleep - poor sleep can sabotage weight loss.",
	"Take a 10-minute walk after meals to aid digestion and boost metabolism.",
	"Use smaller plates to naturally reduce portion sizes.",
	"Plan your meals for the week to avoid last-minute unhealthy choices.",
	"Eat protein with every meal to stay fuller longer.",
	"Don't skip meals - it can lead to overeating later.",
	"Celebrate non-scale victories like increased energy and better fitting clothes.",
	"Practice mindful eating - put your fork down between bites.",
	"Keep a food journal to identify eating patterns and triggers.",
	"Add vegetables to every meal for fiber and nutrients.",
	"Limit liquid calories from sodas, juices, and fancy coffee drinks.",
	"Find a workout buddy for accountability and motivation.",
}

var focuses = []string{
	"Focus on adding more vegetables to your meals today.",
	"Today, pay attention to your hunger cues - eat when hungry, stop when satisfied.",
	"Make movement a priority - take the stairs, park farther away, stretch regularly.",
	"Practice gratitude for your body and what it can do.",
	"Today's goal: drink your full water target.",
	"Focus on quality sleep tonight - set a bedtime routine.",
	"Try a new healthy recipe or food today.",
	"Be mindful of emotional eating triggers today.",
	"Celebrate how far you've come on your journey.",
	"Focus on consistency over perfection today.",
	"Plan tomorrow's meals today for success.",
	"Take progress photos or measurements to track non-scale changes.",
	"Practice positive self-talk throughout the day.",
	"Focus on how exercise makes you feel, not just calories burned.",
	"Prep healthy snacks for the week ahead.",
}

// DailyInsightUseCase selects the day's quote, tip, and focus by
// day-of-year. Pure function of the wall-clock date; nothing is persisted.
type DailyInsightUseCase struct {
	now func() time.Time
}

// NewDailyInsightUseCase creates a new DailyInsightUseCase instance.
func NewDailyInsightUseCase(now func() time.Time) *DailyInsightUseCase {
	if now == nil {
		now = time.Now
	}
	return &DailyInsightUseCase{now: now}
}

// Execute returns the content bundle for today.
func (uc *DailyInsightUseCase) Execute() *entity.DailyInsight {
	dayOfYear := uc.now().YearDay()
	q := quotes[dayOfYear%len(quotes)]
	return &entity.DailyInsight{
		Quote:  q.text,
		Author: q.author,
		Tip:    tips[dayOfYear%len(tips)],
		Focus:  focuses[dayOfYear%len(focuses)],
	}
}
