// Package i18n holds the two fixed language packs consumed by the rendering
// layer and the advisor. Switching language is a pure label swap; no label
// is ever written back into the document.
package i18n

import "github.com/ekosiswoyo/cv-generator/internal/model"

// Labels is the full set of user-visible strings for one language.
type Labels struct {
	AppTitle       string
	AppDesc        string
	Summary        string
	Objective      string
	Experience     string
	Internships    string
	Education      string
	Skills         string
	Projects       string
	Certifications string
	Languages      string
	Contact        string
	Present        string
	CoverLetter    string
	ScanToView     string

	TipShortSummary string
	TipNoExperience string
	TipNoLinkedIn   string
	TipFewSkills    string
	TipsLookingGood string
}

var en = Labels{
	AppTitle:       "CleanCV",
	AppDesc:        "ATS friendly, customizable, private",
	Summary:        "Professional Summary",
	Objective:      "Career Objective",
	Experience:     "Work Experience",
	Internships:    "Experience & Internships",
	Education:      "Education",
	Skills:         "Skills",
	Projects:       "Portfolio / Projects",
	Certifications: "Certifications",
	Languages:      "Languages",
	Contact:        "Contact",
	Present:        "Present",
	CoverLetter:    "Cover Letter",
	ScanToView:     "Scan to view profile",

	TipShortSummary: "Your summary is a bit short. Try to highlight your unique value proposition.",
	TipNoExperience: "Don't forget to add your work experience!",
	TipNoLinkedIn:   "Adding a LinkedIn profile can increase your credibility.",
	TipFewSkills:    "Try adding at least 3-5 core technical skills.",
	TipsLookingGood: "Your profile looks solid and ready for ATS!",
}

var id = Labels{
	AppTitle:       "CleanCV",
	AppDesc:        "ATS friendly, customizable, private, siap kirim kerja",
	Summary:        "Ringkasan Profesional",
	Objective:      "Tujuan Karier",
	Experience:     "Pengalaman Kerja",
	Internships:    "Pengalaman & Organisasi",
	Education:      "Pendidikan",
	Skills:         "Keahlian",
	Projects:       "Portofolio / Projek",
	Certifications: "Sertifikasi",
	Languages:      "Bahasa",
	Contact:        "Kontak",
	Present:        "Sekarang",
	CoverLetter:    "Surat Lamaran",
	ScanToView:     "Pindai untuk lihat profil",

	TipShortSummary: "Ringkasanmu masih terlalu pendek. Soroti nilai unik yang kamu tawarkan.",
	TipNoExperience: "Jangan lupa tambahkan pengalaman kerjamu!",
	TipNoLinkedIn:   "Menambahkan profil LinkedIn bisa menambah kredibilitasmu.",
	TipFewSkills:    "Coba tambahkan minimal 3-5 keahlian teknis utama.",
	TipsLookingGood: "Profilmu sudah solid dan siap untuk ATS!",
}

// Table returns the label pack for the given language code. Unknown codes
// fall back to English.
func Table(lang model.Lang) Labels {
	if lang == model.LangID {
		return id
	}
	return en
}
