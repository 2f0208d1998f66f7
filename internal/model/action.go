package model

import (
	"fmt"
	"strconv"
)

// ActionKind names an action variant
type ActionKind string

const (
	ActionTravel      ActionKind = "travel"
	ActionWorkShift   ActionKind = "work"
	ActionApplyForJob ActionKind = "apply"
	ActionTakeCourse  ActionKind = "enroll"
	ActionStudy       ActionKind = "study"
	ActionRelax       ActionKind = "relax"
	ActionBuyItem     ActionKind = "buy"
	ActionDeposit     ActionKind = "deposit"
	ActionWithdraw    ActionKind = "withdraw"
	ActionTakeLoan    ActionKind = "loan"
	ActionRepayLoan   ActionKind = "repay"
	ActionBuyCar      ActionKind = "buy-car"
	ActionEndTurn     ActionKind = "end-turn"
	ActionPass        ActionKind = "pass"
)

// Action is a closed set of validated state transitions. The unexported
// marker keeps the set closed to this package.
type Action interface {
	Kind() ActionKind
	String() string
	isAction()
}

type TravelAction struct{ Destination Location }
type WorkShiftAction struct{}
type ApplyForJobAction struct{ JobID JobID }
type TakeCourseAction struct{ CourseID CourseID }
type StudyAction struct{}
type RelaxAction struct{}
type BuyItemAction struct{ Item string }
type DepositAction struct{ Amount int }
type WithdrawAction struct{ Amount int }
type TakeLoanAction struct{ Amount int }
type RepayLoanAction struct{ Amount int }
type BuyCarAction struct{}
type EndTurnAction struct{}
type PassAction struct{}

func (TravelAction) Kind() ActionKind      { return ActionTravel }
func (WorkShiftAction) Kind() ActionKind   { return ActionWorkShift }
func (ApplyForJobAction) Kind() ActionKind { return ActionApplyForJob }
func (TakeCourseAction) Kind() ActionKind  { return ActionTakeCourse }
func (StudyAction) Kind() ActionKind       { return ActionStudy }
func (RelaxAction) Kind() ActionKind       { return ActionRelax }
func (BuyItemAction) Kind() ActionKind     { return ActionBuyItem }
func (DepositAction) Kind() ActionKind     { return ActionDeposit }
func (WithdrawAction) Kind() ActionKind    { return ActionWithdraw }
func (TakeLoanAction) Kind() ActionKind    { return ActionTakeLoan }
func (RepayLoanAction) Kind() ActionKind   { return ActionRepayLoan }
func (BuyCarAction) Kind() ActionKind      { return ActionBuyCar }
func (EndTurnAction) Kind() ActionKind     { return ActionEndTurn }
func (PassAction) Kind() ActionKind        { return ActionPass }

func (a TravelAction) String() string      { return "travel to " + string(a.Destination) }
func (WorkShiftAction) String() string     { return "work a shift" }
func (a ApplyForJobAction) String() string { return "apply for " + string(a.JobID) }
func (a TakeCourseAction) String() string  { return "enroll in " + string(a.CourseID) }
func (StudyAction) String() string         { return "study" }
func (RelaxAction) String() string         { return "relax" }
func (a BuyItemAction) String() string     { return "buy " + a.Item }
func (a DepositAction) String() string     { return fmt.Sprintf("deposit $%d", a.Amount) }
func (a WithdrawAction) String() string    { return fmt.Sprintf("withdraw $%d", a.Amount) }
func (a TakeLoanAction) String() string    { return fmt.Sprintf("borrow $%d", a.Amount) }
func (a RepayLoanAction) String() string   { return fmt.Sprintf("repay $%d", a.Amount) }
func (BuyCarAction) String() string        { return "buy a car" }
func (EndTurnAction) String() string       { return "end turn" }
func (PassAction) String() string          { return "pass" }

func (TravelAction) isAction()      {}
func (WorkShiftAction) isAction()   {}
func (ApplyForJobAction) isAction() {}
func (TakeCourseAction) isAction()  {}
func (StudyAction) isAction()       {}
func (RelaxAction) isAction()       {}
func (BuyItemAction) isAction()     {}
func (DepositAction) isAction()     {}
func (WithdrawAction) isAction()    {}
func (TakeLoanAction) isAction()    {}
func (RepayLoanAction) isAction()   {}
func (BuyCarAction) isAction()      {}
func (EndTurnAction) isAction()     {}
func (PassAction) isAction()        {}

// ParseAction builds an action from its kind and optional argument.
// Amount-taking actions require a positive-or-zero integer argument; range
// checks are left to the engine so they are logged like any other failure.
func ParseAction(kind ActionKind, arg string) (Action, error) {
	switch kind {
	case ActionTravel:
		if arg == "" {
			return nil, fmt.Errorf("%w: travel needs a destination", ErrInvalidAction)
		}
		return TravelAction{Destination: Location(arg)}, nil
	case ActionWorkShift:
		return WorkShiftAction{}, nil
	case ActionApplyForJob:
		if arg == "" {
			return nil, fmt.Errorf("%w: apply needs a job id", ErrInvalidAction)
		}
		return ApplyForJobAction{JobID: JobID(arg)}, nil
	case ActionTakeCourse:
		if arg == "" {
			return nil, fmt.Errorf("%w: enroll needs a course id", ErrInvalidAction)
		}
		return TakeCourseAction{CourseID: CourseID(arg)}, nil
	case ActionStudy:
		return StudyAction{}, nil
	case ActionRelax:
		return RelaxAction{}, nil
	case ActionBuyItem:
		if arg == "" {
			return nil, fmt.Errorf("%w: buy needs an item name", ErrInvalidAction)
		}
		return BuyItemAction{Item: arg}, nil
	case ActionDeposit, ActionWithdraw, ActionTakeLoan, ActionRepayLoan:
		amount, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %s needs a whole-dollar amount", ErrInvalidAction, kind)
		}
		switch kind {
		case ActionDeposit:
			return DepositAction{Amount: amount}, nil
		case ActionWithdraw:
			return WithdrawAction{Amount: amount}, nil
		case ActionTakeLoan:
			return TakeLoanAction{Amount: amount}, nil
		default:
			return RepayLoanAction{Amount: amount}, nil
		}
	case ActionBuyCar:
		return BuyCarAction{}, nil
	case ActionEndTurn:
		return EndTurnAction{}, nil
	case ActionPass:
		return PassAction{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown action %q", ErrInvalidAction, kind)
	}
}
