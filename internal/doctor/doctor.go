// Package doctor runs health checks over the Fluorine data directory setup.
package doctor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/CamRed25/Fluorine-Manager/internal/datadir"
	"github.com/CamRed25/Fluorine-Manager/internal/paths"
	"github.com/CamRed25/Fluorine-Manager/internal/stylesheets"
)

// Status is the outcome of a single check.
type Status string

const (
	Pass Status = "pass"
	Warn Status = "warn"
	Fail Status = "fail"
)

// Check is the result of one health check.
type Check struct {
	Name    string `json:"name"`
	Status  Status `json:"status"`
	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"`
}

// Summary counts check outcomes.
type Summary struct {
	Passed   int `json:"passed"`
	Warnings int `json:"warnings"`
	Failed   int `json:"failed"`
}

// Result holds every check in run order.
type Result struct {
	Checks  []Check `json:"checks"`
	Summary Summary `json:"summary"`
}

// Healthy reports whether no check failed.
func (r *Result) Healthy() bool {
	return r.Summary.Failed == 0
}

// Inputs are the facts the checks run against.
type Inputs struct {
	Report    paths.Report
	ConfigErr error
	ThemeDirs []string

	// Fix creates a missing data directory instead of warning about it.
	Fix bool
}

// Run executes all checks.
func Run(ctx context.Context, in Inputs) *Result {
	res := &Result{}
	add := func(c Check) {
		res.Checks = append(res.Checks, c)
		switch c.Status {
		case Pass:
			res.Summary.Passed++
		case Warn:
			res.Summary.Warnings++
		case Fail:
			res.Summary.Failed++
		}
	}

	add(checkHome(in.Report.Data))
	add(checkDataDir(ctx, in.Report.Data.Path, in.Fix))
	add(checkLegacy(in.Report))
	add(checkConfig(in.ConfigErr))
	add(checkThemes(in.ThemeDirs))
	return res
}

func checkHome(res datadir.Resolution) Check {
	if res.HomeKnown() {
		return Check{Name: "Home Directory", Status: Pass, Message: res.Home}
	}
	return Check{
		Name:    "Home Directory",
		Status:  Fail,
		Message: fmt.Sprintf("%s is not set; data would live under %s", datadir.HomeEnv, datadir.FallbackHome),
		Hint:    "Set " + datadir.HomeEnv + " so data survives reboots and is not shared between users",
	}
}

func checkDataDir(ctx context.Context, dir string, fix bool) Check {
	const name = "Data Directory"
	st := datadir.Check(dir)

	if !st.Exists && st.Err == "" && fix {
		if err := datadir.Ensure(ctx, dir); err != nil {
			return Check{Name: name, Status: Fail, Message: "could not create " + dir + ": " + err.Error()}
		}
		st = datadir.Check(dir)
		if st.Writable {
			return Check{Name: name, Status: Pass, Message: dir + " (created)"}
		}
	}

	switch {
	case st.Err != "" && !st.Exists:
		return Check{Name: name, Status: Fail, Message: st.Err}
	case !st.Exists:
		return Check{Name: name, Status: Warn, Message: dir + " does not exist", Hint: "Run 'fluorine dir --ensure' or 'fluorine doctor --fix'"}
	case !st.IsDir:
		return Check{Name: name, Status: Fail, Message: dir + " is not a directory"}
	case !st.Writable:
		return Check{Name: name, Status: Fail, Message: dir + " is not writable: " + st.Err}
	default:
		return Check{Name: name, Status: Pass, Message: dir}
	}
}

func checkLegacy(report paths.Report) Check {
	legacy := report.Lookup(paths.NameLegacy)
	if info, err := os.Stat(legacy); err == nil && info.IsDir() {
		return Check{
			Name:    "Legacy Data",
			Status:  Warn,
			Message: "found data at " + legacy,
			Hint:    "Run 'fluorine migrate' to move it into the data directory",
		}
	}
	return Check{Name: "Legacy Data", Status: Pass, Message: "no legacy directory"}
}

func checkConfig(err error) Check {
	if err != nil {
		return Check{Name: "Config", Status: Fail, Message: err.Error(), Hint: "Fix or remove the config file"}
	}
	return Check{Name: "Config", Status: Pass, Message: "ok"}
}

func checkThemes(dirs []string) Check {
	themes, skipped := stylesheets.Discover(dirs)
	if len(skipped) > 0 {
		unreadable := make([]string, 0, len(skipped))
		for _, s := range skipped {
			unreadable = append(unreadable, s.Dir)
		}
		return Check{
			Name:    "Stylesheets",
			Status:  Warn,
			Message: fmt.Sprintf("%d theme(s) found; cannot read %s", len(themes), strings.Join(unreadable, ", ")),
			Hint:    "Fix permissions or remove the entry from extra_stylesheet_dirs",
		}
	}
	return Check{Name: "Stylesheets", Status: Pass, Message: fmt.Sprintf("%d theme(s) found", len(themes))}
}
