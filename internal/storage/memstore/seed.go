package memstore

import (
	"time"

	"github.com/bounceboom/training-portal/internal/models"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic("memstore: bad seed date " + value)
	}
	return t
}

func datePtr(value string) *time.Time {
	t := date(value)
	return &t
}

// NewSeeded создаёт хранилище, заполненное демонстрационным набором данных:
// шесть пользователей, шесть категорий, восемь видео и кураторский список
// из пяти видео для временного доступа. Счётчики идентификаторов
// инициализируются значением max+1.
func NewSeeded() *Store {
	s := New()

	s.users = []models.User{
		{
			ID: 1, Name: "John Smith", Email: "john.smith@bounceboom.com",
			Username: "john_coach", Role: models.RoleEmployee, Status: models.StatusActive,
			CreatedAt: date("2024-01-15"), LastLogin: datePtr("2024-01-20"),
		},
		{
			ID: 2, Name: "Sarah Johnson", Email: "sarah.johnson@temp.com",
			Username: "temp_sarah", Role: models.RoleTemporary, Status: models.StatusActive,
			CreatedAt: date("2024-01-18"), LastLogin: datePtr("2024-01-19"),
			ExpiresAt: datePtr("2024-01-25"),
		},
		{
			ID: 3, Name: "Mike Wilson", Email: "mike.wilson@bounceboom.com",
			Username: "admin_mike", Role: models.RoleAdministrator, Status: models.StatusActive,
			CreatedAt: date("2024-01-10"), LastLogin: datePtr("2024-01-20"),
		},
		{
			ID: 4, Name: "Emily Davis", Email: "emily.davis@bounceboom.com",
			Username: "emily_pro", Role: models.RoleEmployee, Status: models.StatusActive,
			CreatedAt: date("2024-01-12"), LastLogin: datePtr("2024-01-18"),
		},
		{
			ID: 5, Name: "Carlos Martinez", Email: "carlos.martinez@temp.com",
			Username: "temp_carlos", Role: models.RoleTemporary, Status: models.StatusActive,
			CreatedAt: date("2024-01-16"), LastLogin: datePtr("2024-01-17"),
			ExpiresAt: datePtr("2024-01-23"),
		},
		{
			ID: 6, Name: "Lisa Thompson", Email: "lisa.thompson@bounceboom.com",
			Username: "lisa_coach", Role: models.RoleEmployee, Status: models.StatusInactive,
			CreatedAt: date("2024-01-08"), LastLogin: datePtr("2024-01-14"),
		},
	}
	s.nextUserID = 7

	s.categories = []models.Category{
		{ID: "technique", Name: "Technique", Description: "Proper form and technique training"},
		{ID: "safety", Name: "Safety Protocols", Description: "Court safety and injury prevention"},
		{ID: "rules", Name: "Rules & Regulations", Description: "Official game rules and tournament regulations"},
		{ID: "equipment", Name: "Equipment Care", Description: "Maintenance and proper use of equipment"},
		{ID: "customer", Name: "Customer Service", Description: "Customer interaction and service excellence"},
		{ID: "business", Name: "Business Operations", Description: "Court management and business procedures"},
	}

	s.videos = []models.Video{
		{
			ID: 1, Title: "Proper Tennis Serve Technique",
			Description: "Learn the fundamentals of an effective tennis serve, including grip, stance, and follow-through.",
			Category:    "technique", Duration: "12:30",
			SourceURL:  "https://youtube.com/watch?v=dQw4w9WgXcQ",
			UploadDate: date("2024-01-15"), Views: 145, Featured: true,
		},
		{
			ID: 2, Title: "Pickleball Court Safety Guidelines",
			Description: "Essential safety protocols and best practices for pickleball court management.",
			Category:    "safety", Duration: "8:15",
			SourceURL:  "https://youtube.com/watch?v=example2",
			UploadDate: date("2024-01-12"), Views: 89,
		},
		{
			ID: 3, Title: "Customer Interaction Best Practices",
			Description: "How to provide exceptional customer service and handle difficult situations.",
			Category:    "customer", Duration: "15:45",
			SourceURL:  "https://youtube.com/watch?v=example3",
			UploadDate: date("2024-01-10"), Views: 203, Featured: true,
		},
		{
			ID: 4, Title: "Equipment Maintenance Checklist",
			Description: "Daily, weekly, and monthly maintenance procedures for court equipment.",
			Category:    "equipment", Duration: "6:20",
			SourceURL:  "https://youtube.com/watch?v=example4",
			UploadDate: date("2024-01-08"), Views: 67,
		},
		{
			ID: 5, Title: "Tennis Tournament Rules Overview",
			Description: "Comprehensive guide to official tennis tournament rules and regulations.",
			Category:    "rules", Duration: "18:30",
			SourceURL:  "https://youtube.com/watch?v=example5",
			UploadDate: date("2024-01-05"), Views: 134,
		},
		{
			ID: 6, Title: "Advanced Pickleball Strategies",
			Description: "Professional-level strategies and tactics for competitive pickleball.",
			Category:    "technique", Duration: "22:15",
			SourceURL:  "https://youtube.com/watch?v=example6",
			UploadDate: date("2024-01-03"), Views: 98, Featured: true,
		},
		{
			ID: 7, Title: "Emergency Response Procedures",
			Description: "How to handle medical emergencies and accidents on the court.",
			Category:    "safety", Duration: "11:45",
			SourceURL:  "https://youtube.com/watch?v=example7",
			UploadDate: date("2024-01-01"), Views: 156,
		},
		{
			ID: 8, Title: "Court Booking System Training",
			Description: "Step-by-step guide to using the court reservation system.",
			Category:    "business", Duration: "9:30",
			SourceURL:  "https://youtube.com/watch?v=example8",
			UploadDate: date("2023-12-28"), Views: 87,
		},
	}
	s.nextVideoID = 9

	s.tempSelection = []int{1, 2, 4, 6, 8}

	return s
}
