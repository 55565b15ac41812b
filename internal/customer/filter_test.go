package customer

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/custkeeper/internal/common"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	damyant = Record{ID: "1", FirstName: "Damyant", LastName: "Jain", Email: "dj@example.com", Discount: 10}
	sukriti = Record{ID: "2", FirstName: "Sukriti", LastName: "Gantayet", Email: "sg@example.com", Discount: 15}
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name string
		spec FilterSpec
		rec  Record
		want bool
	}{
		{"name hit on last name", FilterSpec{FilterName, "jai"}, damyant, true},
		{"name miss", FilterSpec{FilterName, "jai"}, sukriti, false},
		{"name spans first and last", FilterSpec{FilterName, "t jain"}, damyant, true},
		{"name ignores email", FilterSpec{FilterName, "dj@"}, damyant, false},
		{"email hit", FilterSpec{FilterEmail, "sg@"}, sukriti, true},
		{"email miss", FilterSpec{FilterEmail, "sg@"}, damyant, false},
		{"email ignores name", FilterSpec{FilterEmail, "sukriti"}, sukriti, false},
		{"all by name", FilterSpec{FilterAll, "gant"}, sukriti, true},
		{"all by email", FilterSpec{FilterAll, "dj@"}, damyant, true},
		{"all miss", FilterSpec{FilterAll, "zzz"}, damyant, false},
		{"case folded and trimmed", FilterSpec{FilterName, "  JAIN "}, damyant, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.spec.Match(tt.rec))
		})
	}
}

func TestMatches_EmptyTextMatchesEverything(t *testing.T) {
	for _, mode := range []FilterMode{FilterAll, FilterName, FilterEmail} {
		for _, text := range []string{"", "   ", "\t"} {
			spec := FilterSpec{Mode: mode, Text: text}
			assert.True(t, spec.Match(damyant), "mode=%s text=%q", mode, text)
			assert.True(t, spec.Match(Record{}), "mode=%s text=%q", mode, text)
		}
	}
}

func TestParseFilterMode(t *testing.T) {
	for _, mode := range []FilterMode{FilterAll, FilterName, FilterEmail} {
		got, err := ParseFilterMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, got)
	}

	got, err := ParseFilterMode(" EMAIL ")
	require.NoError(t, err)
	assert.Equal(t, FilterEmail, got)

	_, err = ParseFilterMode("phone")
	require.Error(t, err)
}

func TestRecord_Validate(t *testing.T) {
	ok := Record{FirstName: "A", LastName: "B", Email: "a@b.com", Discount: 30}
	require.NoError(t, ok.Validate())
	assert.Nil(t, ok.FieldErrors())

	bad := Record{FirstName: "  ", LastName: "", Email: "", Discount: 31}
	require.Error(t, bad.Validate())

	errs := bad.FieldErrors()
	assert.Equal(t, "First Name is required", errs["FirstName"])
	assert.Equal(t, "Last Name is required", errs["LastName"])
	assert.Equal(t, "Email is required", errs["Email"])
	assert.Equal(t, "Discount must be between 0 and 30", errs["Discount"])

	neg := Record{FirstName: "A", LastName: "B", Email: "c", Discount: -1}
	assert.Contains(t, neg.FieldErrors(), "Discount")
}

func TestRecord_Validate_WhitespaceOnlyFields(t *testing.T) {
	valid := Record{FirstName: "A", LastName: "B", Email: "a@b.com"}

	tests := []struct {
		name  string
		field string
		edit  func(r *Record)
	}{
		{"first name", "FirstName", func(r *Record) { r.FirstName = "  " }},
		{"last name", "LastName", func(r *Record) { r.LastName = "\t" }},
		{"email", "Email", func(r *Record) { r.Email = " \n " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.edit(&r)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, r.Validate(), &verrs)
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.field, verrs[0].Field())
		})
	}
}

func TestMutationFailure_IsAndKind(t *testing.T) {
	nf := error(&MutationFailure{Kind: NotFound, ID: "x"})
	assert.True(t, errors.Is(nf, common.ErrorNotFound))
	assert.False(t, errors.Is(nf, common.ErrorNotRemovable))
	assert.Equal(t, "customer x not found", nf.Error())

	nr := error(&MutationFailure{Kind: NotRemovable, ID: "y"})
	assert.True(t, errors.Is(nr, common.ErrorNotRemovable))

	cause := errors.New("disk full")
	se := error(&MutationFailure{Kind: StoreError, Err: cause})
	assert.True(t, errors.Is(se, cause))
	assert.Equal(t, "store error: disk full", se.Error())

	kind, ok := FailureKindOf(errors.Join(errors.New("wrap"), nr))
	require.True(t, ok)
	assert.Equal(t, NotRemovable, kind)

	_, ok = FailureKindOf(cause)
	assert.False(t, ok)
}

func TestMutationFailure_MessageOverride(t *testing.T) {
	f := &MutationFailure{Kind: StoreError, Err: errors.New("io"), Message: "store error: io"}
	assert.Equal(t, "store error: io", f.Error())
}
