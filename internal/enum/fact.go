package enum

import (
	"strings"

	"github.com/mpyw/switchenum/internal/exhaustive"
)

// MembersFact records the members of an enum type so that switches in
// importing packages can be checked.
// It must stay gob-encodable.
type MembersFact struct {
	Members []exhaustive.Member
}

// AFact implements analysis.Fact.
func (*MembersFact) AFact() {}

func (f *MembersFact) String() string {
	names := make([]string, len(f.Members))
	for i, m := range f.Members {
		names[i] = m.Name
	}

	return "enum members: " + strings.Join(names, ",")
}
