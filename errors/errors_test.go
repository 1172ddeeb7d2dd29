package errors

import (
	stderrors "errors"
	"testing"
)

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		a      *Error
		b      error
		wantIs bool
	}{
		"instance of the same root": {
			a:      ErrNotFound,
			b:      ErrNotFound,
			wantIs: true,
		},
		"wrapped once": {
			a:      ErrNotFound,
			b:      Wrap(ErrNotFound, "gone"),
			wantIs: true,
		},
		"wrapped twice": {
			a:      ErrNotFound,
			b:      Wrap(Wrap(ErrNotFound, "gone"), "outer"),
			wantIs: true,
		},
		"different root": {
			a:      ErrNotFound,
			b:      ErrUnauthorized,
			wantIs: false,
		},
		"different root wrapped": {
			a:      ErrNotFound,
			b:      Wrap(ErrUnauthorized, "nope"),
			wantIs: false,
		},
		"stdlib error": {
			a:      ErrNotFound,
			b:      stderrors.New("not found"),
			wantIs: false,
		},
		"nil error": {
			a:      ErrNotFound,
			b:      nil,
			wantIs: false,
		},
		"nil root is nil error": {
			a:      nil,
			b:      nil,
			wantIs: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.a.Is(tc.b); got != tc.wantIs {
				t.Fatalf("unexpected result: %v", got)
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "description"); err != nil {
		t.Fatalf("wrapping nil must return nil, got %+v", err)
	}
}

func TestWrapPreservesCode(t *testing.T) {
	err := Wrapf(ErrAmount, "got %d", -4)
	if !ErrAmount.Is(err) {
		t.Fatalf("wrapped error lost its root: %+v", err)
	}
	if ErrInput.Is(err) {
		t.Fatal("wrapped error must not match a foreign root")
	}
}

func TestRegisterPanicsOnReuse(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("reusing an error code must panic")
		}
	}()
	Register(ErrNotFound.Code(), "duplicate of not found")
}

func TestAppend(t *testing.T) {
	if err := Append(nil, nil); err != nil {
		t.Fatalf("appending nothing must return nil, got %+v", err)
	}

	err := Append(nil, Wrap(ErrState, "a"), Wrap(ErrAmount, "b"))
	m, ok := err.(multiError)
	if !ok {
		t.Fatalf("want multiError, got %T", err)
	}
	if len(m) != 2 {
		t.Fatalf("want 2 errors, got %d", len(m))
	}
	if !m.Contains(ErrState) || !m.Contains(ErrAmount) {
		t.Fatal("combined errors must keep their roots")
	}
	if m.Contains(ErrNotFound) {
		t.Fatal("must not contain a foreign root")
	}
}
