// Package resume provides the Résumé Document model: the single data tree
// describing the profile, skills, work history, achievements, and media links.
package resume

// PersonalInfo holds the contact block shown in the page header.
type PersonalInfo struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	LinkedIn   string `json:"linkedin"`
	ProfilePic string `json:"profilePic"`
}

// Skills holds two independent ordered skill lists. Order is display order;
// duplicates are permitted.
type Skills struct {
	Key       []string `json:"key"`
	Technical []string `json:"technical"`
}

// Experience is one work-history entry. ID is opaque and unique within the
// document; it is assigned at creation and never recomputed.
type Experience struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Company  string   `json:"company"`
	Logo     string   `json:"logo"`
	Period   string   `json:"period"`
	Duration string   `json:"duration"`
	Bullets  []string `json:"bullets"`
}

// MediaItem is an embedded video link (project/demo videos).
type MediaItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Document is the root of the persisted data tree. The field names in the
// serialized form match the original stored format, so a previously persisted
// blob remains loadable.
//
// IntroVideoURL doubles as the schema-validity marker: a stored document
// without it is treated as stale and discarded in favor of the default.
type Document struct {
	PersonalInfo  PersonalInfo `json:"personalInfo"`
	Summary       string       `json:"summary"`
	Skills        Skills       `json:"skills"`
	Experience    []Experience `json:"experience"`
	Achievements  []string     `json:"achievements"`
	IntroVideoURL string       `json:"introVideoUrl"`
	ProjectVideos []MediaItem  `json:"projectVideos"`
}

// Clone returns a deep copy of the document. The store hands out clones so
// callers can never alias its internal state.
func (d *Document) Clone() *Document {
	out := *d

	out.Skills.Key = append([]string(nil), d.Skills.Key...)
	out.Skills.Technical = append([]string(nil), d.Skills.Technical...)
	out.Achievements = append([]string(nil), d.Achievements...)

	out.Experience = make([]Experience, len(d.Experience))
	for i, exp := range d.Experience {
		out.Experience[i] = exp
		out.Experience[i].Bullets = append([]string(nil), exp.Bullets...)
	}

	out.ProjectVideos = append([]MediaItem(nil), d.ProjectVideos...)

	return &out
}

// Valid reports whether the document passes the schema-validity check used on
// load. It follows the original behavior: a missing or empty introVideoUrl
// marks the document as stale.
func (d *Document) Valid() bool {
	return d.IntroVideoURL != ""
}

// ExperienceByID returns the index of the experience entry with the given ID,
// or -1 if no entry matches.
func (d *Document) ExperienceByID(id string) int {
	for i, exp := range d.Experience {
		if exp.ID == id {
			return i
		}
	}
	return -1
}

// ProjectVideoByID returns the index of the media item with the given ID, or
// -1 if no item matches.
func (d *Document) ProjectVideoByID(id string) int {
	for i, item := range d.ProjectVideos {
		if item.ID == id {
			return i
		}
	}
	return -1
}
