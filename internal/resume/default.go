package resume

// DefaultDocument returns the compiled-in default document used when no
// stored snapshot exists or the stored snapshot fails the validity check.
func DefaultDocument() *Document {
	return &Document{
		PersonalInfo: PersonalInfo{
			Name:       "Jahanzaib Khan",
			Address:    "House No. 9, Raja Ram Street, Gawalmandi, Lahore, Pakistan",
			Phone:      "0318-8801020",
			Email:      "jhanzaibkhan000777@gmail.com",
			LinkedIn:   "linkedin.com/in/jhanzaib-khan-342972278",
			ProfilePic: "https://picsum.photos/seed/jahanzaib/400/400",
		},
		Summary: "Highly skilled Customer Support Specialist and Team Lead with 2+ years of experience in delivering exceptional support and managing healthcare operations. Proven ability to lead teams, streamline Prior Authorization workflows, and resolve complex queries to drive customer and patient satisfaction. Proficient in CRM management and insurance coordination.",
		Skills: Skills{
			Key: []string{
				"Team Leadership & Training",
				"Prior Authorization (PA) Management",
				"Insurance Verification",
				"Customer Success & Retention",
				"CRM Management",
				"Call, Live Chat & Email Support",
			},
			Technical: []string{
				"Insurance Portals",
				"Excel VBA (Intermediate)",
				"App Script (Google Sheets)",
			},
		},
		Experience: []Experience{
			{
				ID:       "3",
				Title:    "Team Lead – Prior Authorization",
				Company:  "Xyber Systems",
				Logo:     "https://picsum.photos/seed/xyber/100/100",
				Period:   "March 2025 – Present",
				Duration: "Present",
				Bullets: []string{
					"Promoted to Team Lead – Prior Authorization in September 2025, leading a team, monitoring performance, and ensuring timely authorization submissions.",
					"Transitioned to the Prior Authorization (PA) Work Queue, managing insurance approvals and documentation for medical services.",
					"Started as a Patient Calling Representative (March–July 2025), handling outbound/inbound calls, insurance verification, and patient coordination.",
					"Collaborate closely with providers, insurance companies, and internal teams to reduce denials and improve turnaround times.",
					"Train new team members and maintain high quality and compliance standards.",
				},
			},
			{
				ID:       "1",
				Title:    "Customer Support Specialist",
				Company:  "SA Aligners",
				Logo:     "https://picsum.photos/seed/sa/100/100",
				Period:   "Mar 2024 – Feb 2025",
				Duration: "11 Months",
				Bullets: []string{
					"Manage CRM systems, customer data, and treatment tracking for orthodontic patients.",
					"Maintain constant communication with customers regarding their treatment plans.",
					"Coordinate shipments for new orders and schedule video sessions for patients.",
					"Ensure smooth operations and provide excellent customer support throughout the patient journey.",
				},
			},
			{
				ID:       "2",
				Title:    "Customer Support Executive",
				Company:  "Plan Lab Solutions",
				Logo:     "https://picsum.photos/seed/pls/100/100",
				Period:   "Feb 2023 – Jan 2024",
				Duration: "11 Months",
				Bullets: []string{
					"Handled inbound and outbound calls, emails, and live chat support for Shopify stores.",
					"Assisted customers with product inquiries, order tracking, and issue resolution.",
					"Collaborated with team members to meet project deadlines and improve.",
				},
			},
		},
		Achievements: []string{
			"Promoted to Team Lead at Xyber Systems within 6 months of joining.",
			"Maintained customer Satisfaction ratings 95%",
			"Maintained customer Retention ratings 95%",
			"Increased Sales by 35% as a customer support at SA Aligners by reaching out to warm leads.",
		},
		IntroVideoURL: "https://www.youtube.com/embed/dQw4w9WgXcQ",
		ProjectVideos: []MediaItem{
			{
				ID:    "p1",
				Title: "Customer Support Dashboard",
				URL:   "https://www.youtube.com/embed/dQw4w9WgXcQ",
			},
		},
	}
}

// NewExperience returns a blank work-history entry with a fresh ID and the
// placeholder values shown to the owner while editing.
func NewExperience() Experience {
	return Experience{
		ID:       NewEntryID(),
		Title:    "New Job Title",
		Company:  "New Company",
		Logo:     "https://picsum.photos/seed/job/100/100",
		Period:   "2024 - Present",
		Duration: "0 Months",
		Bullets:  []string{"Description of what you did..."},
	}
}

// NewProjectVideo returns a blank media item with a fresh ID.
func NewProjectVideo() MediaItem {
	return MediaItem{
		ID:    NewEntryID(),
		Title: "New Application Video",
		URL:   "",
	}
}
