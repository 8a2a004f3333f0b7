package mocks

type recordingScope struct {
	recorder *Recorder
	name     string
}

// AddEvent implements otel.Scope.
func (s *recordingScope) AddEvent(_ string) {}

// End implements otel.Scope.
func (s *recordingScope) End() {}

// SetAttribute implements otel.Scope.
func (s *recordingScope) SetAttribute(_ string, _ any) {}

// SetAttributes implements otel.Scope.
func (s *recordingScope) SetAttributes(_ map[string]any) {}

// TraceError implements otel.Scope.
func (s *recordingScope) TraceError(err error) {
	if s.recorder != nil {
		s.recorder.record(s.name, err)
	}
}

// TraceIfError implements otel.Scope.
func (s *recordingScope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}
