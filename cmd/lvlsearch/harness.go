package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/lvlsearch/hillclimb"
	"github.com/katalvlaran/lvlsearch/internal/config"
	"github.com/katalvlaran/lvlsearch/internal/runner"
	"github.com/katalvlaran/lvlsearch/riddle"
	"github.com/katalvlaran/lvlsearch/slidepuzzle"
)

// report is one row of the run summary.
type report struct {
	Job        config.Job
	Found      bool
	Cost       int
	Solution   string
	Expanded   int
	Iterations int
	Duration   time.Duration
	Err        error
}

// runAll solves every job in order and writes a summary table to out.
// It returns the number of failed jobs; an unreachable goal is not a failure.
func runAll(cfg *config.JobFile, out io.Writer) int {
	runID := uuid.New()
	klog.Infof("run %s: %d jobs", runID, len(cfg.Jobs))

	reports := make([]report, 0, len(cfg.Jobs))
	failed := 0
	for _, j := range cfg.Jobs {
		r := runJob(j)
		if j.Deadline > 0 && r.Duration > j.Deadline {
			klog.Warningf("run %s: job %s took %s, over its %s deadline", runID, j.Name, r.Duration, j.Deadline)
		}
		if r.Err != nil {
			failed++
			klog.Errorf("run %s: job %s: %v", runID, j.Name, r.Err)
		} else {
			klog.V(1).Infof("run %s: job %s: cost=%d expanded=%s in %s",
				runID, j.Name, r.Cost, humanize.Comma(int64(r.Expanded)), r.Duration)
		}
		reports = append(reports, r)
	}
	writeReports(out, reports)
	klog.Infof("run %s: done, %d of %d jobs failed", runID, failed, len(cfg.Jobs))

	return failed
}

// runJob dispatches on the job kind.
func runJob(j config.Job) report {
	r := report{Job: j}
	text, err := j.ReadInput()
	if err != nil {
		r.Err = err
		return r
	}
	switch j.Kind {
	case config.KindSlide:
		err = solveSlide(j, text, &r)
	case config.KindHill:
		err = solveHill(j, text, &r)
	case config.KindRiddle:
		err = solveRiddle(j, text, &r)
	default:
		err = errors.Errorf("unknown kind %q", j.Kind)
	}
	r.Err = err

	return r
}

func fill[N any](r *report, res runner.Result[N]) {
	r.Found = res.Found
	r.Cost = res.Cost
	r.Expanded += res.Expanded
	r.Iterations += res.Iterations
	r.Duration += res.Duration
}

func solveSlide(j config.Job, text string, r *report) error {
	goal, err := slidepuzzle.Goal(j.Size)
	if err != nil {
		return errors.Wrapf(err, "job %s", j.Name)
	}
	g, err := slidepuzzle.NewGraph(j.Size, goal)
	if err != nil {
		return errors.Wrapf(err, "job %s", j.Name)
	}
	start, err := slidepuzzle.Parse(j.Size, strings.TrimSpace(text))
	if err != nil {
		return errors.Wrapf(err, "job %s", j.Name)
	}
	if err = g.Check(start); err != nil {
		return errors.Wrapf(err, "job %s", j.Name)
	}

	res, err := runner.Run(runner.SpecFor(j), g, slidepuzzle.Identity(), start)
	if err != nil {
		return errors.Wrapf(err, "job %s", j.Name)
	}
	fill(r, res)
	r.Solution = slidepuzzle.Moves(res.Path)

	return nil
}

func solveHill(j config.Job, text string, r *report) error {
	opts := hillclimb.DefaultOptions()
	if j.MaxClimb != nil {
		opts.MaxClimb = *j.MaxClimb
	}
	if j.Diagonal {
		opts.Conn = hillclimb.Conn8
	}
	m, err := hillclimb.ParseString(text, opts)
	if err != nil {
		return errors.Wrapf(err, "job %s", j.Name)
	}

	starts := []hillclimb.Cell{m.Start()}
	if j.FromLowest {
		starts = m.Lows()
	}
	spec := runner.SpecFor(j)
	var best *runner.Result[hillclimb.Cell]
	for _, s := range starts {
		res, err := runner.Run(spec, m, m.Identity(), s)
		if err != nil {
			return errors.Wrapf(err, "job %s: from %d,%d", j.Name, s.X, s.Y)
		}
		r.Expanded += res.Expanded
		r.Iterations += res.Iterations
		r.Duration += res.Duration
		if res.Found && (best == nil || res.Cost < best.Cost) {
			best = &res
		}
	}
	if best == nil {
		r.Cost = -1
		return nil
	}
	r.Found, r.Cost = true, best.Cost
	from := best.Path[0]
	r.Solution = fmt.Sprintf("from %d,%d", from.X, from.Y)

	return nil
}

func solveRiddle(j config.Job, text string, r *report) error {
	rd, err := riddle.Parse(strings.TrimSpace(text))
	if err != nil {
		return errors.Wrapf(err, "job %s", j.Name)
	}
	res, err := runner.Run(runner.SpecFor(j), rd, rd.Identity(), rd.Start())
	if err != nil {
		return errors.Wrapf(err, "job %s", j.Name)
	}
	fill(r, res)
	if !res.Found {
		return nil
	}
	ops, err := rd.Explain(res.Path)
	if err != nil {
		return errors.Wrapf(err, "job %s", j.Name)
	}
	steps := make([]string, len(ops))
	for i, o := range ops {
		steps[i] = o.String()
	}
	r.Solution = strings.Join(steps, " ")

	return nil
}

// writeReports renders reports as an aligned table.
func writeReports(out io.Writer, reports []report) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "JOB\tKIND\tALGORITHM\tCOST\tEXPANDED\tTIME\tSOLUTION")
	for _, r := range reports {
		var cost string
		switch {
		case r.Err != nil:
			cost = "error"
		case r.Found:
			cost = humanize.Comma(int64(r.Cost))
		default:
			cost = "no path"
		}
		solution := r.Solution
		if r.Err != nil {
			solution = r.Err.Error()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Job.Name, r.Job.Kind, r.Job.Algorithm, cost,
			humanize.Comma(int64(r.Expanded)), r.Duration.Round(time.Microsecond), solution)
	}
	tw.Flush()
}
