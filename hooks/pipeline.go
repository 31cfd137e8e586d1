package hooks

import (
	"context"
	"sort"
)

// State tracks pipeline progress through one dispatch.
type State int

const (
	NotStarted State = iota
	BeforeRunning
	Cancelled
	ActionRunning
	ErrorHandling
	AfterRunning
	Completed
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case BeforeRunning:
		return "before hooks"
	case Cancelled:
		return "cancelled"
	case ActionRunning:
		return "action"
	case ErrorHandling:
		return "error hooks"
	case AfterRunning:
		return "after hooks"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// Outcome is the terminal result of one pipeline run.
type Outcome struct {
	State         State
	Code          int
	CancelMessage string
}

// Pipeline holds the hooks for one action invocation, split by stage and
// sorted by Order. Registration order breaks ties, so hooks from outer
// registrations (application, then command, then action) keep their
// relative position.
type Pipeline struct {
	before  []Descriptor
	after   []Descriptor
	onError []Descriptor
}

// NewPipeline merges hook registrations in the order given and sorts each
// stage by ascending Order, keeping registration order for equal orders.
func NewPipeline(groups ...[]Descriptor) *Pipeline {
	p := &Pipeline{}
	for _, g := range groups {
		for _, d := range g {
			if d.Fn == nil {
				continue
			}
			switch d.Stage {
			case StageBefore:
				p.before = append(p.before, d)
			case StageAfter:
				p.after = append(p.after, d)
			case StageOnError:
				p.onError = append(p.onError, d)
			}
		}
	}

	sort.SliceStable(p.before, func(i, j int) bool { return p.before[i].Order < p.before[j].Order })
	sort.SliceStable(p.after, func(i, j int) bool { return p.after[i].Order < p.after[j].Order })
	sort.SliceStable(p.onError, func(i, j int) bool { return p.onError[i].Order < p.onError[j].Order })

	return p
}

// Run executes the pipeline around invoke.
//
// Before hooks run sequentially; any may cancel via hc.Cancel, which skips
// the remaining before hooks and the action. After hooks run once the
// action returns successfully and observe its result through hc. On an
// action error, error hooks run in order until one marks it handled; an
// unhandled error is returned to the caller. Cooperative cancellation of
// ctx is checked at every hook boundary and before the action.
func (p *Pipeline) Run(ctx context.Context, hc *Context, invoke func(context.Context) (int, error)) (Outcome, error) {
	for _, d := range p.before {
		if err := ctx.Err(); err != nil {
			return Outcome{State: Cancelled, CancelMessage: err.Error()}, err
		}
		if err := d.Fn(ctx, hc); err != nil {
			return Outcome{State: BeforeRunning}, err
		}
		if hc.Cancelled() {
			return Outcome{State: Cancelled, CancelMessage: hc.CancelMessage()}, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return Outcome{State: Cancelled, CancelMessage: err.Error()}, err
	}

	result, err := invoke(ctx)
	if err != nil {
		hc.actionErr = err
		for _, d := range p.onError {
			if cerr := ctx.Err(); cerr != nil {
				return Outcome{State: Cancelled, CancelMessage: cerr.Error()}, cerr
			}
			if herr := d.Fn(ctx, hc); herr != nil {
				// An error hook may replace the propagating error.
				hc.actionErr = herr
			}
			if hc.handled {
				return Outcome{State: Completed, Code: hc.result}, nil
			}
		}
		return Outcome{State: ErrorHandling}, hc.actionErr
	}

	hc.result = result
	for _, d := range p.after {
		if cerr := ctx.Err(); cerr != nil {
			return Outcome{State: Cancelled, CancelMessage: cerr.Error()}, cerr
		}
		if aerr := d.Fn(ctx, hc); aerr != nil {
			return Outcome{State: AfterRunning}, aerr
		}
	}

	return Outcome{State: Completed, Code: result}, nil
}
