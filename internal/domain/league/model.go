package league

import "fmt"

// League is a real-world competition whose player pool feeds fantasy squads.
type League struct {
	ID          string
	Name        string
	CountryCode string
	Season      string
	IsDefault   bool
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}

	return nil
}
