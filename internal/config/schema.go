package config

import "time"

// Kinds of puzzle a job can describe.
const (
	KindSlide  = "slide"
	KindHill   = "hill"
	KindRiddle = "riddle"
)

// Search algorithms a job can run.
const (
	AlgorithmAStar   = "astar"
	AlgorithmIDAStar = "idastar"
)

// IDA* path membership strategies.
const (
	MembershipPathSet    = "path-set"
	MembershipLinearScan = "linear-scan"
)

// JobFile is the top-level YAML structure.
type JobFile struct {
	Defaults Defaults `yaml:"defaults"`
	Jobs     []Job    `yaml:"jobs"`
}

// Defaults apply to every job that leaves the field empty.
type Defaults struct {
	Algorithm  string `yaml:"algorithm"`
	Membership string `yaml:"membership"`
}

// Job is one puzzle to solve.
type Job struct {
	Name      string `yaml:"name"`
	Kind      string `yaml:"kind"`      // slide | hill | riddle
	Algorithm string `yaml:"algorithm"` // astar | idastar

	// Membership selects the IDA* cycle check; ignored by astar.
	Membership string `yaml:"membership"`

	// Input is the puzzle text: tiles for slide, the map for hill, the riddle sentence.
	Input string `yaml:"input"`
	// File is read instead of Input; relative paths resolve against the job file.
	File string `yaml:"file"`

	// Size is the slide puzzle side length.
	Size int `yaml:"size"`

	// FromLowest makes a hill job search from every lowest cell.
	FromLowest bool `yaml:"from_lowest"`
	// MaxClimb overrides the hill climbing limit; nil means 1, 0 walks flat or down only.
	MaxClimb *int `yaml:"max_climb"`
	// Diagonal enables 8-directional hill steps.
	Diagonal bool `yaml:"diagonal"`

	// Deadline is a soft time limit: a slower job is reported, not stopped.
	Deadline time.Duration `yaml:"deadline"`
}
