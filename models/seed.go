package models

import (
	"time"

	"gorm.io/gorm"
)

// SeedSampleData populates the database with demonstration doctors, patients,
// consultations and appointments. It is a no-op when doctors already exist, so
// a fresh store gets data exactly once.
func SeedSampleData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Doctor{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	doctors := []Doctor{
		{Name: "Dr. Jane Smith", Specialization: "Cardiology", Credentials: "MD, FACC"},
		{Name: "Dr. Robert Johnson", Specialization: "Family Medicine", Credentials: "MD"},
		{Name: "Dr. Maria Garcia", Specialization: "Endocrinology", Credentials: "MD, PhD"},
		{Name: "Dr. David Chen", Specialization: "Neurology", Credentials: "MD, FAAN"},
	}
	if err := db.Create(&doctors).Error; err != nil {
		return err
	}

	patients := []Patient{
		{Name: "John Doe", DateOfBirth: "1980-05-15", ContactInformation: "john.doe@email.com, (555) 123-4567", MedicalRecordNumber: "MRN12345", Category: CategoryChronic},
		{Name: "Sarah Williams", DateOfBirth: "1992-09-23", ContactInformation: "sarah.w@email.com, (555) 987-6543", MedicalRecordNumber: "MRN67890", Category: CategoryAcute},
		{Name: "Michael Rodriguez", DateOfBirth: "1975-12-10", ContactInformation: "m.rodriguez@email.com, (555) 555-5555", MedicalRecordNumber: "MRN24680", Category: CategoryChronic},
		{Name: "Emily Johnson", DateOfBirth: "1988-03-27", ContactInformation: "emily.j@email.com, (555) 222-3333", MedicalRecordNumber: "MRN13579", Category: CategoryChronic},
	}
	if err := db.Create(&patients).Error; err != nil {
		return err
	}

	consultations := []Consultation{
		{
			PatientID: patients[0].ID, DoctorID: doctors[0].ID,
			Date:          time.Date(2024, 11, 10, 0, 0, 0, 0, time.UTC),
			Notes:         "Initial visit. Patient reports occasional chest pain during physical exertion. Family history of coronary artery disease. Blood pressure 145/90.",
			Diagnosis:     "Suspected coronary artery disease",
			TreatmentPlan: "Ordered ECG and stress test. Prescribed atorvastatin 20mg daily. Recommended lifestyle changes.",
		},
		{
			PatientID: patients[0].ID, DoctorID: doctors[0].ID,
			Date:          time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			Notes:         "Follow-up visit. Stress test reveals moderate ischemia. Improved symptoms with medication but occasional angina with exertion remains.",
			Diagnosis:     "Stable angina",
			TreatmentPlan: "Continued current medication. Added metoprolol 25mg twice daily. Scheduled coronary angiogram.",
		},
		{
			PatientID: patients[0].ID, DoctorID: doctors[0].ID,
			Date:          time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
			Notes:         "Post-angiogram follow-up. Angiogram showed 70% stenosis in LAD. Stent placed successfully. No chest pain since procedure.",
			Diagnosis:     "Coronary artery disease, status post stent placement",
			TreatmentPlan: "Continue atorvastatin and metoprolol. Added clopidogrel 75mg daily for 12 months. Cardiac rehabilitation 3x weekly.",
		},
		{
			PatientID: patients[0].ID, DoctorID: doctors[0].ID,
			Date:          time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC),
			Notes:         "Patient presented with chest pain and shortness of breath after missing 3 doses of medication. ECG shows no acute changes.",
			Diagnosis:     "Angina pectoris",
			TreatmentPlan: "Reinforced medication adherence. Prescribed nitroglycerin sublingual for acute episodes. Follow-up in 2 weeks.",
		},
		{
			PatientID: patients[1].ID, DoctorID: doctors[1].ID,
			Date:          time.Date(2024, 8, 12, 0, 0, 0, 0, time.UTC),
			Notes:         "Annual physical examination. Good overall health with occasional headaches after long work hours. BMI 23.1, BP 118/78.",
			Diagnosis:     "Healthy check-up, tension headaches",
			TreatmentPlan: "Recommended regular breaks when working, proper hydration. Follow up in 12 months or as needed.",
		},
		{
			PatientID: patients[2].ID, DoctorID: doctors[2].ID,
			Date:          time.Date(2024, 7, 22, 0, 0, 0, 0, time.UTC),
			Notes:         "Initial visit for diabetes management. Polyuria, polydipsia, unintentional weight loss. Random blood glucose 278 mg/dL. HbA1c 9.2%.",
			Diagnosis:     "Type 2 Diabetes Mellitus, newly diagnosed",
			TreatmentPlan: "Started on metformin 500mg BID with meals. Diabetes education provided. Referral to nutritionist.",
		},
		{
			PatientID: patients[2].ID, DoctorID: doctors[2].ID,
			Date:          time.Date(2025, 1, 25, 0, 0, 0, 0, time.UTC),
			Notes:         "Quarterly follow-up. Blood glucose readings averaging 120-140 mg/dL. HbA1c 7.2%. Mild neuropathic symptoms noted in feet.",
			Diagnosis:     "Type 2 Diabetes Mellitus with early peripheral neuropathy",
			TreatmentPlan: "Continued current medication. Added alpha-lipoic acid supplement. Referred to podiatry.",
		},
		{
			PatientID: patients[3].ID, DoctorID: doctors[3].ID,
			Date:          time.Date(2024, 9, 5, 0, 0, 0, 0, time.UTC),
			Notes:         "New patient consultation for recurring headaches. Intense, throbbing pain with photophobia and nausea, 2-3 times monthly for a year.",
			Diagnosis:     "Migraine without aura",
			TreatmentPlan: "Prescribed sumatriptan 50mg for acute attacks. Recommended headache diary to identify triggers.",
		},
		{
			PatientID: patients[3].ID, DoctorID: doctors[3].ID,
			Date:          time.Date(2024, 12, 12, 0, 0, 0, 0, time.UTC),
			Notes:         "Follow-up for migraines. Frequency increased to weekly episodes, correlated with menstrual cycle and lack of sleep.",
			Diagnosis:     "Migraine without aura, increasing frequency",
			TreatmentPlan: "Added propranolol 40mg daily for prevention. Ordered brain MRI to rule out secondary causes.",
		},
	}
	if err := db.Create(&consultations).Error; err != nil {
		return err
	}

	appointments := []Appointment{
		{PatientID: patients[0].ID, DoctorID: doctors[0].ID, DateTime: time.Date(2026, 9, 10, 14, 30, 0, 0, time.UTC), Status: StatusScheduled, Purpose: "Follow-up appointment for angina"},
		{PatientID: patients[1].ID, DoctorID: doctors[1].ID, DateTime: time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC), Status: StatusScheduled, Purpose: "Annual check-up"},
		{PatientID: patients[2].ID, DoctorID: doctors[2].ID, DateTime: time.Date(2026, 9, 12, 11, 15, 0, 0, time.UTC), Status: StatusScheduled, Purpose: "Quarterly diabetes monitoring"},
		{PatientID: patients[3].ID, DoctorID: doctors[3].ID, DateTime: time.Date(2026, 9, 18, 9, 30, 0, 0, time.UTC), Status: StatusScheduled, Purpose: "Migraine therapy evaluation"},
		{PatientID: patients[0].ID, DoctorID: doctors[0].ID, DateTime: time.Date(2026, 11, 5, 13, 0, 0, 0, time.UTC), Status: StatusScheduled, Purpose: "Cardiac stress test follow-up"},
		{PatientID: patients[2].ID, DoctorID: doctors[2].ID, DateTime: time.Date(2026, 12, 10, 15, 45, 0, 0, time.UTC), Status: StatusScheduled, Purpose: "HbA1c check and medication review"},
	}
	return db.Create(&appointments).Error
}
