package store

import (
	"time"

	"github.com/otelassist/opsboard/internal/domain"
)

// NewDemoStore returns a MemoryStore seeded with a plausible hotel
// evening, for the --offline demo mode and manual TUI testing. Status
// literals deliberately mix English and the legacy Turkish spellings,
// the way real rows do.
func NewDemoStore(now time.Time) *MemoryStore {
	m := NewMemoryStore()
	base := now.UnixMilli()
	minutesAgo := func(n int64) int64 { return base - n*60_000 }

	inProg := minutesAgo(40)
	completedStart := minutesAgo(95)
	completedEnd := minutesAgo(20)
	completion := int64(120)
	work := int64(75)

	m.SeedJoins(
		[]domain.Guest{
			{ID: 1, Name: "Ayşe Yılmaz", Room: "104"},
			{ID: 2, Name: "Mehmet Demir", Room: "212"},
			{ID: 3, Name: "Elif Kaya", Room: "305"},
		},
		[]domain.Department{
			{ID: 1, Name: "Housekeeping"},
			{ID: 2, Name: "Room Service"},
			{ID: 3, Name: "Teknik Servis"},
		},
	)

	g1, g2, g3 := int64(1), int64(2), int64(3)
	d1, d2, d3 := int64(1), int64(2), int64(3)
	m.SeedTasks(
		domain.RawTask{
			ID: 1, GuestID: &g1, DepartmentID: &d1,
			Description: "Ekstra havlu rica ediyorum",
			Status:      "bekliyor", Priority: "medium", Source: "phone",
			CreatedAt: minutesAgo(12),
		},
		domain.RawTask{
			ID: 2, GuestID: &g2, DepartmentID: &d2,
			Description: "Kahvaltı siparişi - oda servisi",
			Status:      "onaylandı", Priority: "high", Source: "crm",
			AssignedTo: "Fatma", CreatedAt: minutesAgo(55), InProgressAt: &inProg,
		},
		domain.RawTask{
			ID: 3, GuestID: &g3, DepartmentID: &d3,
			Description: "Klima çalışmıyor",
			Status:      "tamamlandı", Priority: "high", Source: "direct",
			AssignedTo: "Hasan", CompletedBy: "Hasan",
			CreatedAt: minutesAgo(140), InProgressAt: &completedStart,
			CompletedAt: &completedEnd, CompletionTime: &completion, WorkTime: &work,
		},
	)
	m.SeedRequests(
		domain.RawGuestRequest{
			ID: 1, GuestID: &g1,
			Request: "Oda ısısı çok düşük, battaniye alabilir miyim?",
			Status:  "pending", Source: "whatsapp",
			CreatedAt: minutesAgo(5),
		},
		domain.RawGuestRequest{
			ID: 2, GuestID: &g2,
			Request: "Geç çıkış mümkün mü?",
			Status:  "in_progress", Source: "whatsapp",
			CreatedAt: minutesAgo(30), InProgressAt: &inProg,
		},
	)
	return m
}
