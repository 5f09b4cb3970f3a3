package model

// Go models for the normalized CV data document consumed by the render
// engine. Every field is optional: the aggregator fills in whatever the
// per-section stores hold for a user, and builders tolerate the gaps.

type Education struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Grade       string `json:"grade,omitempty"`
}

type WorkExperience struct {
	JobTitle         string   `json:"job_title,omitempty"`
	Company          string   `json:"company,omitempty"`
	Location         string   `json:"location,omitempty"`
	StartDate        string   `json:"start_date,omitempty"`
	EndDate          string   `json:"end_date,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}

type Project struct {
	Title        string   `json:"title,omitempty"`
	Description  string   `json:"description,omitempty"`
	Link         string   `json:"link,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
}

type Certificate struct {
	Name   string `json:"name,omitempty"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

type Language struct {
	Language    string `json:"language,omitempty"`
	Proficiency string `json:"proficiency,omitempty"`
}

type Reference struct {
	Name     string `json:"name,omitempty"`
	Position string `json:"position,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// CVDocument is the read-only aggregate handed to the render engine.
// It is assembled fresh per request and never mutated by builders.
type CVDocument struct {
	FullName       string `json:"full_name,omitempty"`
	FirstName      string `json:"first_name,omitempty"`
	MiddleName     string `json:"middle_name,omitempty"`
	LastName       string `json:"last_name,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Address        string `json:"address,omitempty"`
	Website        string `json:"website,omitempty"`
	LinkedIn       string `json:"linkedin,omitempty"`
	GitHub         string `json:"github,omitempty"`
	Nationality    string `json:"nationality,omitempty"`
	DateOfBirth    string `json:"date_of_birth,omitempty"`
	ProfileImage   string `json:"profile_image,omitempty"`
	ProfileSummary string `json:"profile_summary,omitempty"`
	CareerObj      string `json:"career_objective,omitempty"`

	Educations      []Education      `json:"educations,omitempty"`
	WorkExperiences []WorkExperience `json:"work_experiences,omitempty"`
	Projects        []Project        `json:"projects,omitempty"`
	Certificates    []Certificate    `json:"certificates,omitempty"`
	Languages       []Language       `json:"languages,omitempty"`
	References      []Reference      `json:"references,omitempty"`
	Achievements    []string         `json:"achievements,omitempty"`
	TechnicalSkills []string         `json:"technical_skills,omitempty"`
	SoftSkills      []string         `json:"soft_skills,omitempty"`
}
