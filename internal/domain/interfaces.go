package domain

// ProjectStore reads and writes whole projects.
type ProjectStore interface {
	Load(path string) (*Project, error)
	Save(p *Project, path string) error
}

// Generator turns a project into a machine instruction stream.
type Generator interface {
	Generate(p *Project) (string, error)
}
