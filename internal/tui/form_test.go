package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/packrat/internal/logging"
)

func newTestForm() *itemForm {
	return newItemForm(logging.Discard())
}

func fillForm(f *itemForm, name, description, weight string) {
	f.inputs[fieldName].SetValue(name)
	f.inputs[fieldDescription].SetValue(description)
	f.inputs[fieldWeight].SetValue(weight)
}

func TestFormSubmitValid(t *testing.T) {
	t.Parallel()

	f := newTestForm()
	fillForm(f, "Tent", "Two-person tent", "1200")

	name, description, grams, ok := f.submit()
	require.True(t, ok)
	require.Equal(t, "Tent", name)
	require.Equal(t, "Two-person tent", description)
	require.Equal(t, 1200.0, grams)
	require.Empty(t, f.errMsg)
}

func TestFormSubmitTrimsWhitespace(t *testing.T) {
	t.Parallel()

	f := newTestForm()
	fillForm(f, "  Tent  ", "  Two-person tent  ", " 500 ")

	name, description, grams, ok := f.submit()
	require.True(t, ok)
	require.Equal(t, "Tent", name)
	require.Equal(t, "Two-person tent", description)
	require.Equal(t, 500.0, grams)
}

func TestFormSubmitRejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		testName    string
		name        string
		description string
		weight      string
		wantErr     string
	}{
		{"empty name", "", "Two-person tent", "1200", "name is required"},
		{"whitespace name", "   ", "Two-person tent", "1200", "name is required"},
		{"short description", "Tent", "Big", "1200", "description must be at least 5 characters"},
		{"missing weight", "Tent", "Two-person tent", "", "weight is required"},
		{"non-numeric weight", "Tent", "Two-person tent", "heavy", "weight must be a number"},
		{"NaN weight", "Ghost", "phantom payload", "NaN", "weight must be a number"},
		{"lowercase nan weight", "Ghost", "phantom payload", "nan", "weight must be a number"},
		{"infinite weight", "Tent", "Two-person tent", "Inf", "weight must be a number"},
		{"weight below range", "Tent", "Two-person tent", "0", "weight must be at least 1"},
		{"weight above range", "Tent", "Two-person tent", "1001", "weight must be at most 1000"},
	}
	for _, tt := range tests {
		t.Run(tt.testName, func(t *testing.T) {
			t.Parallel()

			f := newTestForm()
			fillForm(f, tt.name, tt.description, tt.weight)

			_, _, _, ok := f.submit()
			require.False(t, ok)
			require.Equal(t, tt.wantErr, f.errMsg)
		})
	}
}

func TestFormSubmitAcceptsRangeBoundaries(t *testing.T) {
	t.Parallel()

	for _, weight := range []string{"1", "1000"} {
		f := newTestForm()
		fillForm(f, "Tent", "Two-person tent", weight)
		_, _, _, ok := f.submit()
		require.True(t, ok, "weight %s", weight)
	}
}

func TestFormFailedSubmitKeepsTypedValues(t *testing.T) {
	t.Parallel()

	f := newTestForm()
	fillForm(f, "", "Two-person tent", "1200")

	_, _, _, ok := f.submit()
	require.False(t, ok)
	require.Equal(t, "Two-person tent", f.inputs[fieldDescription].Value())
	require.Equal(t, "1200", f.inputs[fieldWeight].Value())
}

func TestFormResetClearsFieldsAndError(t *testing.T) {
	t.Parallel()

	f := newTestForm()
	fillForm(f, "", "short", "0")
	f.submit()
	require.NotEmpty(t, f.errMsg)

	f.focusNext()
	f.reset()

	require.Empty(t, f.errMsg)
	require.Equal(t, fieldName, f.focus)
	for i := range f.inputs {
		require.Empty(t, f.inputs[i].Value())
	}
	require.True(t, f.inputs[fieldName].Focused())
	require.False(t, f.inputs[fieldDescription].Focused())
}

func TestFormFocusCycles(t *testing.T) {
	t.Parallel()

	f := newTestForm()
	require.Equal(t, fieldName, f.focus)

	f.focusNext()
	require.Equal(t, fieldDescription, f.focus)
	f.focusNext()
	require.Equal(t, fieldWeight, f.focus)
	f.focusNext()
	require.Equal(t, fieldName, f.focus)

	f.focusPrev()
	require.Equal(t, fieldWeight, f.focus)
	require.True(t, f.inputs[fieldWeight].Focused())
	require.False(t, f.inputs[fieldName].Focused())
}

func TestFormViewShowsError(t *testing.T) {
	t.Parallel()

	f := newTestForm()
	fillForm(f, "", "", "")
	f.submit()

	view := f.View()
	require.Contains(t, view, "Add gear")
	require.Contains(t, view, "Name")
	require.Contains(t, view, "Weight (grams)")
	require.Contains(t, view, "name is required")
}
