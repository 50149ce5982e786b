package catalog

import "medicomeet-api/internal/model"

var specializations = []model.Specialization{
	{ID: "1", Name: "Cardiology", Icon: "Heart"},
	{ID: "2", Name: "Dermatology", Icon: "Sparkles"},
	{ID: "3", Name: "Neurology", Icon: "Brain"},
	{ID: "4", Name: "Pediatrics", Icon: "Baby"},
	{ID: "5", Name: "Orthopedics", Icon: "Bone"},
	{ID: "6", Name: "Psychiatry", Icon: "Smile"},
	{ID: "7", Name: "Ophthalmology", Icon: "Eye"},
	{ID: "8", Name: "Gynecology", Icon: "UserPlus"},
}

func photo(id string) string {
	return "https://images.pexels.com/photos/" + id + "/pexels-photo-" + id + ".jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"
}

var doctors = []model.Doctor{
	{
		ID:                 "1",
		Name:               "Dr. Sarah Johnson",
		Specialization:     specializations[0],
		Image:              photo("5214961"),
		Rating:             4.8,
		ReviewCount:        124,
		Education:          "MD, Harvard Medical School",
		Experience:         "15 years",
		Bio:                "Dr. Sarah Johnson is a board-certified cardiologist with 15 years of experience in treating various heart conditions. She specializes in preventive cardiology and heart failure management.",
		Languages:          []string{"English", "Spanish"},
		ConsultationFee:    150,
		AvailableDays:      []string{"Monday", "Tuesday", "Thursday", "Friday"},
		AvailableTimeSlots: []string{"09:00 AM", "10:00 AM", "11:00 AM", "02:00 PM", "03:00 PM", "04:00 PM"},
	},
	{
		ID:                 "2",
		Name:               "Dr. Michael Chen",
		Specialization:     specializations[2],
		Image:              photo("4173239"),
		Rating:             4.9,
		ReviewCount:        89,
		Education:          "MD, Johns Hopkins University",
		Experience:         "12 years",
		Bio:                "Dr. Michael Chen is a neurologist specializing in movement disorders and neurodegenerative diseases. He completed his residency at Mayo Clinic and fellowship at Johns Hopkins Hospital.",
		Languages:          []string{"English", "Mandarin"},
		ConsultationFee:    180,
		AvailableDays:      []string{"Tuesday", "Wednesday", "Friday"},
		AvailableTimeSlots: []string{"08:00 AM", "09:00 AM", "10:00 AM", "01:00 PM", "02:00 PM", "03:00 PM"},
	},
	{
		ID:                 "3",
		Name:               "Dr. Emily Rodriguez",
		Specialization:     specializations[3],
		Image:              photo("5407206"),
		Rating:             4.7,
		ReviewCount:        156,
		Education:          "MD, Stanford University",
		Experience:         "10 years",
		Bio:                "Dr. Emily Rodriguez is a compassionate pediatrician dedicated to providing comprehensive care for children from infancy through adolescence. She has a special interest in childhood development and preventive care.",
		Languages:          []string{"English", "Spanish"},
		ConsultationFee:    120,
		AvailableDays:      []string{"Monday", "Wednesday", "Thursday", "Friday"},
		AvailableTimeSlots: []string{"09:00 AM", "10:00 AM", "11:00 AM", "02:00 PM", "03:00 PM", "04:00 PM", "05:00 PM"},
	},
	{
		ID:                 "4",
		Name:               "Dr. James Wilson",
		Specialization:     specializations[4],
		Image:              photo("5452201"),
		Rating:             4.6,
		ReviewCount:        103,
		Education:          "MD, University of Pennsylvania",
		Experience:         "18 years",
		Bio:                "Dr. James Wilson is an experienced orthopedic surgeon specializing in sports medicine and joint replacement. He has worked with several professional sports teams and has performed over 1,000 successful surgeries.",
		Languages:          []string{"English"},
		ConsultationFee:    200,
		AvailableDays:      []string{"Monday", "Tuesday", "Thursday"},
		AvailableTimeSlots: []string{"08:00 AM", "09:00 AM", "10:00 AM", "01:00 PM", "02:00 PM"},
	},
	{
		ID:                 "5",
		Name:               "Dr. Amara Patel",
		Specialization:     specializations[1],
		Image:              photo("7579831"),
		Rating:             4.9,
		ReviewCount:        78,
		Education:          "MD, Yale School of Medicine",
		Experience:         "8 years",
		Bio:                "Dr. Amara Patel is a board-certified dermatologist specializing in medical, surgical, and cosmetic dermatology. She has expertise in treating conditions like acne, eczema, psoriasis, and skin cancer.",
		Languages:          []string{"English", "Hindi", "Gujarati"},
		ConsultationFee:    170,
		AvailableDays:      []string{"Tuesday", "Wednesday", "Friday", "Saturday"},
		AvailableTimeSlots: []string{"09:00 AM", "10:00 AM", "11:00 AM", "12:00 PM", "02:00 PM", "03:00 PM"},
	},
	{
		ID:                 "6",
		Name:               "Dr. Robert Kim",
		Specialization:     specializations[5],
		Image:              photo("5215024"),
		Rating:             4.8,
		ReviewCount:        91,
		Education:          "MD, Columbia University",
		Experience:         "14 years",
		Bio:                "Dr. Robert Kim is a psychiatrist with expertise in mood disorders, anxiety, and PTSD. He takes a holistic approach to mental health, combining evidence-based treatments with lifestyle modifications.",
		Languages:          []string{"English", "Korean"},
		ConsultationFee:    160,
		AvailableDays:      []string{"Monday", "Wednesday", "Thursday"},
		AvailableTimeSlots: []string{"10:00 AM", "11:00 AM", "01:00 PM", "02:00 PM", "03:00 PM", "04:00 PM"},
	},
}
