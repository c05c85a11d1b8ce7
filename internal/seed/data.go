package seed

import (
	"time"

	"github.com/mediconnect/mediconnect-api/internal/models"
)

// SampleDoctors returns the fixed doctor set the seeder installs. IDs are
// left zero so the store assigns them on insert.
func SampleDoctors() []models.Doctor {
	now := time.Now().UTC()
	return []models.Doctor{
		{
			Name:                 "Dr. Nicolas Muhigi",
			Specialization:       "Cardiology",
			Hospital:             "King Faisal Hospital",
			Rating:               4.5,
			ReviewCount:          123,
			YearsExperience:      15,
			PatientCount:         100,
			About:                "Dr. Nicolas is a highly experienced cardiologist with over 15 years of practice in the medical field. Committed to providing exceptional patient care.",
			WorkingHours:         "Mon - Sat (08:30 AM - 5:00 PM)",
			Category:             models.CategorySpecialty,
			CommunicationMethods: []string{"Messaging", "Audio Call", "Video Call"},
			CreatedAt:            now,
		},
		{
			Name:            "Dr. Sarah Johnson",
			Specialization:  "Pediatry",
			Hospital:        "Rwanda Military Hospital",
			Rating:          4.7,
			ReviewCount:     156,
			YearsExperience: 12,
			PatientCount:    150,
			About:           "Specialized in pediatric care with a focus on child development and preventive medicine.",
			WorkingHours:    "Mon - Fri (09:00 AM - 6:00 PM)",
			Category:        models.CategoryPrivate,
			CreatedAt:       now,
		},
		{
			Name:            "Dr. James Ndayisenga",
			Specialization:  "Dentistry",
			Hospital:        "Kibagabaga Hospital",
			Rating:          4.6,
			ReviewCount:     98,
			YearsExperience: 10,
			PatientCount:    80,
			About:           "Expert in dental care and cosmetic dentistry procedures.",
			WorkingHours:    "Mon - Sat (08:00 AM - 4:00 PM)",
			Category:        models.CategoryPublic,
			CreatedAt:       now,
		},
		{
			Name:            "Dr. Emma Williams",
			Specialization:  "Surgery",
			Hospital:        "CHUK",
			Rating:          4.8,
			ReviewCount:     210,
			YearsExperience: 18,
			PatientCount:    200,
			About:           "Experienced surgeon specializing in minimally invasive procedures.",
			WorkingHours:    "Mon - Fri (07:00 AM - 3:00 PM)",
			Category:        models.CategoryPublic,
			CreatedAt:       now,
		},
		{
			Name:            "Dr. Marie Uwase",
			Specialization:  "Gynecology",
			Hospital:        "Kigali Medical Center",
			Rating:          4.5,
			ReviewCount:     145,
			YearsExperience: 14,
			PatientCount:    120,
			About:           "Specialized in maternal and reproductive health care.",
			WorkingHours:    "Mon - Sat (08:30 AM - 5:30 PM)",
			Category:        models.CategoryPrivate,
			CreatedAt:       now,
		},
		{
			Name:            "Dr. Robert Mukasa",
			Specialization:  "Mental Health",
			Hospital:        "Ndera Neuropsychiatric Hospital",
			Rating:          4.6,
			ReviewCount:     87,
			YearsExperience: 11,
			PatientCount:    90,
			About:           "Expert psychiatrist focusing on anxiety, depression, and trauma therapy.",
			WorkingHours:    "Mon - Fri (10:00 AM - 6:00 PM)",
			Category:        models.CategorySpecialty,
			CreatedAt:       now,
		},
	}
}

// SampleArticles returns the fixed article set the seeder installs.
func SampleArticles() []models.Article {
	now := time.Now().UTC()
	return []models.Article{
		{
			Title:         "10 tips to boost your immunity systems...",
			Subtitle:      "Proven Strategies to Strengthen Your Body's Defences & Stay Healthy",
			Content:       "The immune system is your body's defense mechanism against illness and infection. Maintaining a strong immune system is crucial for overall health. Here are 10 proven tips: 1) Get adequate sleep, 2) Exercise regularly, 3) Eat a balanced diet rich in fruits and vegetables, 4) Stay hydrated, 5) Manage stress levels, 6) Maintain a healthy weight, 7) Don't smoke, 8) Limit alcohol consumption, 9) Practice good hygiene, 10) Get vaccinated. Following these guidelines can significantly improve your immune response.",
			Author:        "Kyagulanyi Robert",
			PublishedDate: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
			CreatedAt:     now,
		},
		{
			Title:         "Eat healthy, live out your best moments...",
			Subtitle:      "The food you eat plays a key role in living a vibrant and fulfilling life",
			Content:       "Nutrition is fundamental to health and wellbeing. A balanced diet provides the energy and nutrients your body needs to function properly. Focus on whole grains, lean proteins, fruits, vegetables, and healthy fats. Limit processed foods, excessive sugar, and unhealthy fats. Eating mindfully and maintaining portion control are also important. Remember, small dietary changes can lead to significant health improvements over time.",
			Author:        "Dr. Sarah Johnson",
			PublishedDate: time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC),
			CreatedAt:     now,
		},
		{
			Title:         "Practice the ethics to get you started...",
			Subtitle:      "Essential medical ethics every patient should know",
			Content:       "Medical ethics form the foundation of healthcare practice. Understanding these principles helps patients make informed decisions about their care. Key principles include: autonomy (respecting patient choices), beneficence (acting in patient's best interest), non-maleficence (do no harm), and justice (fair distribution of resources). Patients have the right to informed consent, confidentiality, and to refuse treatment.",
			Author:        "Dr. James Ndayisenga",
			PublishedDate: time.Date(2025, time.January, 25, 0, 0, 0, 0, time.UTC),
			CreatedAt:     now,
		},
		{
			Title:         "Under the best uses to healthy living...",
			Subtitle:      "Comprehensive guide to maintaining optimal health",
			Content:       "Living a healthy lifestyle involves multiple factors working together. Regular physical activity, balanced nutrition, adequate sleep, stress management, and social connections all contribute to wellbeing. It's important to find a sustainable routine that works for you. Small, consistent changes often lead to better long-term results than drastic measures. Remember to schedule regular health checkups and screenings.",
			Author:        "Dr. Emma Williams",
			PublishedDate: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
			CreatedAt:     now,
		},
	}
}
