package domain

// WorldResponse holds the 1-based world line, response line and the palace
// anchor line (6 for wandering and returning hexagrams, else the world line).
type WorldResponse struct {
	World    int `json:"world"`
	Response int `json:"response"`
	Anchor   int `json:"anchor"`
}

// HiddenHexagram carries the roles missing from the main hexagram.
type HiddenHexagram struct {
	Name      string      `json:"name"`
	Pattern   Pattern     `json:"pattern"`
	Relatives [6]Relative `json:"relatives"`
	Labels    [6]string   `json:"labels"`
	// Seat lists, ascending, the 0-based lines where a missing role surfaces.
	Seat []int `json:"seat"`
}

// TransformedHexagram is the hexagram produced by flipping the moving lines.
// Its relatives are read against the original palace.
type TransformedHexagram struct {
	Name      string      `json:"name"`
	Pattern   Pattern     `json:"pattern"`
	Relatives [6]Relative `json:"relatives"`
	Labels    [6]string   `json:"labels"`
	Palace    Palace      `json:"palace"`
	Kind      Kind        `json:"kind"`
}

// MonthAnnotations are derived from the month branch.
type MonthAnnotations struct {
	Branch   Branch      `json:"branch"`
	Strength [6]Strength `json:"strength"`
	Clash    [6]bool     `json:"clash"`
}

// DayAnnotations are derived from the day pillar.
type DayAnnotations struct {
	Pillar       string    `json:"pillar"`
	VoidBranches []Branch  `json:"void_branches"`
	Void         [6]bool   `json:"void"`
	Spirits      [6]Spirit `json:"spirits"`
}

// TimeAnnotations groups the calendar-relative per-line facts.
type TimeAnnotations struct {
	Month Optional[MonthAnnotations] `json:"month"`
	Day   Optional[DayAnnotations]   `json:"day"`
}

// Text is the commentary attached to a hexagram name.
type Text struct {
	Name     string   `json:"name" yaml:"name"`
	Judgment string   `json:"judgment" yaml:"judgment"`
	Image    string   `json:"image,omitempty" yaml:"image,omitempty"`
	Lines    []string `json:"lines,omitempty" yaml:"lines,omitempty"`
}

// Request is the input of a single compilation.
type Request struct {
	Lines []int `json:"lines" yaml:"lines"`
	// Date is "2006-01-02" or "2006-01-02 15:04"; it wins over Month/Day.
	Date string `json:"date,omitempty" yaml:"date,omitempty"`
	// Month is an explicit month branch such as 寅.
	Month string `json:"month,omitempty" yaml:"month,omitempty"`
	// Day is an explicit day pillar such as 甲子.
	Day        string `json:"day,omitempty" yaml:"day,omitempty"`
	Commentary bool   `json:"commentary,omitempty" yaml:"commentary,omitempty"`
	Title      string `json:"title,omitempty" yaml:"title,omitempty"`
	Gender     string `json:"gender,omitempty" yaml:"gender,omitempty"`
}

// Hexagram is the compiled result. It is a value: copies share nothing
// mutable except the small index slices, which callers must treat as read-only.
type Hexagram struct {
	Lines     Lines         `json:"lines"`
	Pattern   Pattern       `json:"pattern"`
	Name      string        `json:"name"`
	Palace    Palace        `json:"palace"`
	World     WorldResponse `json:"world"`
	Najia     [6]StemBranch `json:"najia"`
	Relatives [6]Relative   `json:"relatives"`
	Labels    [6]string     `json:"labels"`
	// Spirits follow the day stem of the resolved (or current) day.
	Spirits [6]Spirit `json:"spirits"`
	Moving  []int     `json:"moving"`
	Kind    Kind      `json:"kind"`

	Hidden      Optional[HiddenHexagram]      `json:"hidden"`
	Transformed Optional[TransformedHexagram] `json:"transformed"`
	Time        Optional[TimeAnnotations]     `json:"time"`
	Commentary  Optional[Text]                `json:"commentary"`

	// Echo of the calendar inputs as used.
	Solar       string `json:"solar,omitempty"`
	MonthBranch string `json:"month_branch,omitempty"`
	DayPillar   string `json:"day_pillar,omitempty"`
	YearPillar  string `json:"year_pillar,omitempty"`
	HourPillar  string `json:"hour_pillar,omitempty"`
	Title       string `json:"title,omitempty"`
	Gender      string `json:"gender,omitempty"`
}
