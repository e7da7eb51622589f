package annotations

// Melody is a fundamental-frequency contour sampled on a time grid. A
// frequency of zero denotes an unvoiced frame; Confidence is 1 for voiced
// frames and 0 otherwise.
type Melody struct {
	Times       []float64
	Frequencies []float64
	Confidence  []float64
}

// MultiMelody carries the multi-column contour variant where each time stamp
// may list several simultaneous frequencies.
type MultiMelody struct {
	Times       []float64
	Frequencies [][]float64
}

// Beats pairs beat timestamps (seconds) with their position inside the bar.
type Beats struct {
	Times     []float64
	Positions []int
}

// Sections is a list of labelled time intervals (seconds).
type Sections struct {
	Starts []float64
	Ends   []float64
	Labels []string
}

// Chords is a list of chord labels over time intervals (seconds).
type Chords struct {
	Starts []float64
	Ends   []float64
	Labels []string
}

// Keys is a list of key/mode labels over time intervals (seconds).
type Keys struct {
	Starts []float64
	Ends   []float64
	Labels []string
}

// Notes is a list of MIDI note numbers over time intervals (seconds).
type Notes struct {
	Starts  []float64
	Ends    []float64
	Pitches []float64
}
