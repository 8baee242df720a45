package importer

// ImportStats counts what happened to the rows of one input file.
type ImportStats struct {
	SourceFile     string
	TotalProcessed int
	ValidRecords   int
	SkippedRecords int
	Duplicates     []string
	NegativeScores []string
}

func (s *ImportStats) addDuplicate(student string) {
	s.Duplicates = append(s.Duplicates, student)
}
