package repository

// Project represents information about a detected project
type Project struct {
	RootURL string // project root folder URL
	Type    string // maven, gradle, git or unknown
	Name    string // extracted from build files, VCS origin or the folder name
	Origin  string // git origin URL if any
	Pom     *Pom
}

// Pom represents the key information from a Maven POM file
type Pom struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
	Name       string `xml:"name"`
	Parent     struct {
		GroupID string `xml:"groupId"`
		Version string `xml:"version"`
	} `xml:"parent"`
}
