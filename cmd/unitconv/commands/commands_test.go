package commands

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"unitconv/internal/conversion"
	"unitconv/internal/domain"
	"unitconv/internal/httpapi"
)

type result struct {
	stdout string
	stderr string
	err    error
}

// run executes the CLI with a clean UNITCONV_* environment plus env.
func run(t *testing.T, env map[string]string, ctx context.Context, stdin string, args ...string) result {
	t.Helper()
	for _, key := range []string{"UNITCONV_SERVER", "UNITCONV_SCALE", "UNITCONV_DEFAULT_UNIT", "UNITCONV_LOG_FORMAT"} {
		t.Setenv(key, "")
	}
	t.Setenv("UNITCONV_LOG_LEVEL", "error")
	for k, v := range env {
		t.Setenv(k, v)
	}

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "meters to feet", args: []string{"convert", "1", "m", "ft"}, want: "3.28084\n"},
		{name: "names", args: []string{"convert", "100", "Centimeters", "meters"}, want: "1\n"},
		{name: "negative", args: []string{"convert", "--", "-3", "m", "ft"}, want: "-9.84252\n"},
		{name: "empty", args: []string{"convert", "", "m", "ft"}, want: "\n"},
		{name: "empty ignores units", args: []string{"convert", "", "inch", "ft"}, want: "\n"},
		{name: "line", args: []string{"convert", "--line", "2.5", "ft", "m"}, want: "Result: 0.762 Meters\n"},
		{name: "scale", args: []string{"--scale", "2", "convert", "1", "m", "ft"}, want: "3.28\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, nil, testContext(t), "", tt.args...)
			if res.err != nil {
				t.Fatalf("convert: %v (stderr %q)", res.err, res.stderr)
			}
			if res.stdout != tt.want {
				t.Fatalf("stdout = %q, want %q", res.stdout, tt.want)
			}
		})
	}
}

func TestConvert_Errors(t *testing.T) {
	res := run(t, nil, testContext(t), "", "convert", "abc", "m", "ft")
	if !errors.Is(res.err, domain.ErrInvalidNumber) {
		t.Fatalf("err = %v, want ErrInvalidNumber", res.err)
	}

	res = run(t, nil, testContext(t), "", "convert", "1", "inch", "ft")
	if !errors.Is(res.err, domain.ErrUnknownUnit) || !strings.Contains(res.err.Error(), "inch") {
		t.Fatalf("err = %v, want ErrUnknownUnit naming inch", res.err)
	}

	res = run(t, nil, testContext(t), "", "--scale", "30", "convert", "1", "m", "ft")
	if res.err == nil || !strings.Contains(res.err.Error(), "UNITCONV_SCALE") {
		t.Fatalf("err = %v, want scale range error", res.err)
	}

	res = run(t, nil, testContext(t), "", "convert", "1", "m")
	if res.err == nil {
		t.Fatal("convert with two args succeeded")
	}
}

func TestConvert_Remote(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(httpapi.NewHandler(conversion.New(nil), logger, httpapi.Options{}))
	defer srv.Close()

	res := run(t, nil, testContext(t), "", "--server", srv.URL+"/", "convert", "1", "km", "mm")
	if res.err != nil {
		t.Fatalf("remote convert: %v", res.err)
	}
	if res.stdout != "1000000\n" {
		t.Fatalf("stdout = %q", res.stdout)
	}

	res = run(t, nil, testContext(t), "", "--server", srv.URL, "convert", "x", "km", "mm")
	if !errors.Is(res.err, domain.ErrInvalidNumber) {
		t.Fatalf("err = %v, want ErrInvalidNumber", res.err)
	}

	res = run(t, nil, testContext(t), "", "--server", srv.URL, "convert", "1", "km", "furlong")
	if !errors.Is(res.err, domain.ErrUnknownUnit) || !strings.Contains(res.err.Error(), "furlong") {
		t.Fatalf("err = %v, want ErrUnknownUnit naming furlong", res.err)
	}
}

func TestUnits(t *testing.T) {
	res := run(t, nil, testContext(t), "", "units")
	if res.err != nil {
		t.Fatalf("units: %v", res.err)
	}
	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	if len(lines) != 6 {
		t.Fatalf("units printed %d lines:\n%s", len(lines), res.stdout)
	}
	for _, want := range []string{"NAME", "Millimeters", "km", "foot", "metre"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("units output missing %q:\n%s", want, res.stdout)
		}
	}
}

func TestTable(t *testing.T) {
	res := run(t, nil, testContext(t), "", "table")
	if res.err != nil {
		t.Fatalf("table: %v", res.err)
	}
	rows := map[string][]string{}
	for _, line := range strings.Split(strings.TrimSpace(res.stdout), "\n") {
		fields := strings.Fields(line)
		rows[fields[0]] = fields[1:]
	}
	if got := rows["from\\to"]; strings.Join(got, " ") != "mm cm m km ft" {
		t.Fatalf("header = %v", got)
	}
	// Columns follow AllUnits: mm cm m km ft.
	if got := rows["m"][4]; got != "3.28084" {
		t.Errorf("m->ft = %q", got)
	}
	if got := rows["ft"][2]; got != "0.3048" {
		t.Errorf("ft->m = %q", got)
	}
	if got := rows["km"][0]; got != "1000000" {
		t.Errorf("km->mm = %q", got)
	}
	if got := rows["cm"][1]; got != "1" {
		t.Errorf("cm->cm = %q", got)
	}
}

func TestInteractive(t *testing.T) {
	in := strings.Join([]string{"5", "from m", "to cm", "abc", "from inch", "quit", "7"}, "\n")
	res := run(t, nil, testContext(t), in, "interactive")
	if res.err != nil {
		t.Fatalf("interactive: %v", res.err)
	}

	want := strings.Join([]string{
		"[Select] -> [Select]", "Result:",
		"[Select] -> [Select]", "Result:",
		"[Meters] -> [Select]", "Result:",
		"[Meters] -> [Centimeters]", "Result: 500 Centimeters",
		"[Meters] -> [Centimeters]", "Result: 500 Centimeters",
	}, "\n") + "\n"
	if res.stdout != want {
		t.Fatalf("stdout =\n%s\nwant\n%s", res.stdout, want)
	}
	if !strings.Contains(res.stderr, "Please enter a valid number") {
		t.Errorf("stderr missing invalid number notice: %q", res.stderr)
	}
	if !strings.Contains(res.stderr, `"inch"`) {
		t.Errorf("stderr missing unknown unit: %q", res.stderr)
	}
}

func TestInteractive_DefaultUnit(t *testing.T) {
	env := map[string]string{"UNITCONV_DEFAULT_UNIT": "m"}
	res := run(t, env, testContext(t), "1\nto ft\n", "interactive")
	if res.err != nil {
		t.Fatalf("interactive: %v", res.err)
	}
	want := strings.Join([]string{
		"[Meters] -> [Meters]", "Result: Meters",
		"[Meters] -> [Meters]", "Result: 1 Meters",
		"[Meters] -> [Feet]", "Result: 3.28084 Feet",
	}, "\n") + "\n"
	if res.stdout != want {
		t.Fatalf("stdout =\n%s\nwant\n%s", res.stdout, want)
	}
}

func TestServe_StopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(testContext(t))
	cancel()
	res := run(t, nil, ctx, "", "serve", "--addr", "127.0.0.1:0")
	if res.err != nil {
		t.Fatalf("serve: %v", res.err)
	}
}
