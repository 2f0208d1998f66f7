package game

import (
	"github.com/mcoot/fastlane/internal/model"
)

// Travel tests

func (s *ControllerSuite) TestTravelOnFootCostsTwoHours() {
	s.newSolo()

	s.Require().True(s.controller.Travel(model.LocationBank))

	p := s.current()
	s.Equal(model.LocationBank, p.Location)
	s.Equal(22, p.Time)
	s.Equal([]model.EventType{model.EventLocationChanged, model.EventTimeChanged, model.EventStateChanged}, s.events)
	s.Equal(model.LogAction, s.lastLog().Category)
}

func (s *ControllerSuite) TestTravelByCarCostsOneHour() {
	s.newSolo()
	s.current().HasCar = true

	s.Require().True(s.controller.Travel(model.LocationMall))
	s.Equal(23, s.current().Time)
}

func (s *ControllerSuite) TestTravelToCurrentLocationIsNoOp() {
	s.newSolo()

	s.assertRejected(func() bool { return s.controller.Travel(model.LocationHome) }, "already at the home")
}

func (s *ControllerSuite) TestTravelToUnknownLocationFails() {
	s.newSolo()

	s.assertRejected(func() bool { return s.controller.Travel("moon") }, "unknown location")
}

func (s *ControllerSuite) TestTravelWithoutTimeFails() {
	s.newSolo()
	p := s.current()
	p.Location = model.LocationBank
	p.Time = 1

	s.assertRejected(func() bool { return s.controller.Travel(model.LocationMall) }, "needs 2h")
}

// Job tests

func (s *ControllerSuite) TestApplyAndWork() {
	s.newSolo()
	p := s.current()
	p.Location = model.LocationWorkplace

	s.Require().True(s.controller.ApplyForJob("janitor"))
	s.Equal(model.JobID("janitor"), p.JobID)
	s.Equal(1, p.CareerLevel)
	s.Equal(23, p.Time)
	s.Contains(s.events, model.EventCareerChanged)

	s.Require().True(s.controller.WorkShift())
	s.Equal(64, p.Cash)
	s.Equal(64, p.Weekly.Income)
	s.Equal(15, p.Time)
	s.Equal(48, p.Happiness)
}

func (s *ControllerSuite) TestApplyRequiresEducation() {
	s.newSolo()
	p := s.current()
	p.Location = model.LocationWorkplace
	p.CareerLevel = 1

	s.assertRejected(func() bool { return s.controller.ApplyForJob("clerk") }, "needs education level 1")
}

func (s *ControllerSuite) TestApplyCannotSkipCareerLevels() {
	s.newSolo()
	p := s.current()
	p.Location = model.LocationWorkplace
	p.EducationLevel = 4

	s.assertRejected(func() bool { return s.controller.ApplyForJob("clerk") }, "more experience")
}

func (s *ControllerSuite) TestApplyRejections() {
	s.newSolo()
	p := s.current()

	s.assertRejected(func() bool { return s.controller.ApplyForJob("astronaut") }, "unknown job")
	s.assertRejected(func() bool { return s.controller.ApplyForJob("janitor") }, "must be at the workplace")

	p.Location = model.LocationWorkplace
	p.JobID = "janitor"
	s.assertRejected(func() bool { return s.controller.ApplyForJob("janitor") }, "already works")
}

func (s *ControllerSuite) TestCareerLevelNeverDecreases() {
	s.newSolo()
	p := s.current()
	p.Location = model.LocationWorkplace
	p.CareerLevel = 3
	p.EducationLevel = 3
	p.JobID = "assistant_manager"

	s.Require().True(s.controller.ApplyForJob("janitor"))
	s.Equal(3, p.CareerLevel)
}

func (s *ControllerSuite) TestWorkRejections() {
	s.newSolo()
	p := s.current()
	p.Location = model.LocationWorkplace

	s.assertRejected(func() bool { return s.controller.WorkShift() }, "needs a job")

	p.JobID = "janitor"
	p.Time = 7
	s.assertRejected(func() bool { return s.controller.WorkShift() }, "needs 8h")
}

// Education tests

func (s *ControllerSuite) TestEnrollStudyAndGraduate() {
	s.newSolo()
	p := s.current()
	p.Location = model.LocationSchool
	p.Cash = 150
	var graduated model.GraduationPayload
	s.bus.Subscribe(model.EventGraduation, func(_ model.EventType, payload any) {
		graduated = payload.(model.GraduationPayload)
	})

	s.Require().True(s.controller.TakeCourse("basic_skills"))
	s.Equal(50, p.Cash)
	s.Equal(100, p.Weekly.Expenses)
	s.Equal(model.CourseID("basic_skills"), p.EnrolledCourse)
	s.Equal(3, p.EducationCreditsGoal)
	s.Equal(23, p.Time)

	s.Require().True(s.controller.Study())
	s.Require().True(s.controller.Study())
	s.Equal(2, p.EducationCredits)
	s.Equal(0, p.EducationLevel)

	s.Require().True(s.controller.Study())
	s.Equal(1, p.EducationLevel)
	s.False(p.IsEnrolled())
	s.Zero(p.EducationCredits)
	s.Equal([]string{"Basic Skills"}, p.Weekly.Graduations)
	s.Equal(model.CourseID("basic_skills"), graduated.Course.ID)
	s.Same(p, graduated.Player)
	s.Contains(s.events, model.EventEducationChanged)
	s.Equal(11, p.Time)
}

func (s *ControllerSuite) TestCourseRejections() {
	s.newSolo()
	p := s.current()

	s.assertRejected(func() bool { return s.controller.TakeCourse("wizardry") }, "unknown course")
	s.assertRejected(func() bool { return s.controller.TakeCourse("basic_skills") }, "must be at the school")

	p.Location = model.LocationSchool
	s.assertRejected(func() bool { return s.controller.TakeCourse("associate") }, "must complete level 1")
	s.assertRejected(func() bool { return s.controller.TakeCourse("basic_skills") }, "cannot afford")

	p.EnrolledCourse = "basic_skills"
	p.Cash = 1000
	s.assertRejected(func() bool { return s.controller.TakeCourse("basic_skills") }, "already enrolled")
}

func (s *ControllerSuite) TestStudyRejections() {
	s.newSolo()
	p := s.current()
	p.Location = model.LocationSchool

	s.assertRejected(func() bool { return s.controller.Study() }, "must enroll")

	p.EnrolledCourse = "basic_skills"
	p.Time = 3
	s.assertRejected(func() bool { return s.controller.Study() }, "needs 4h")
}

// Relax tests

func (s *ControllerSuite) TestRelaxAtHome() {
	s.newSolo()

	s.Require().True(s.controller.Relax())

	s.Equal(56, s.current().Happiness)
	s.Equal(20, s.current().Time)
}

func (s *ControllerSuite) TestRelaxAwayFromHomeFails() {
	s.newSolo()
	s.current().Location = model.LocationBank

	s.assertRejected(func() bool { return s.controller.Relax() }, "must be at home")
}

// Economy pass-through tests

func (s *ControllerSuite) TestEconomyActionsPublishStateChanged() {
	s.newSolo()
	p := s.current()
	p.Location = model.LocationBank

	s.Require().True(s.controller.TakeLoan(500))
	s.Require().True(s.controller.Deposit(200))
	s.Require().True(s.controller.Withdraw(100))
	s.Require().True(s.controller.RepayLoan(100))

	s.Equal(300, p.Cash)
	s.Equal(100, p.Savings)
	s.Equal(400, p.Loan)
	s.Equal(model.EventStateChanged, s.events[len(s.events)-1])
}

func (s *ControllerSuite) TestBuyItemAndCarThroughController() {
	s.newSolo()
	p := s.current()
	p.Cash = 4000
	p.Location = model.LocationDealership

	s.Require().True(s.controller.BuyCar())
	s.True(p.HasCar)

	s.Require().True(s.controller.Travel(model.LocationMall))
	s.Require().True(s.controller.BuyItem("Couch"))
	s.True(p.HasEffect(model.EffectComfort))
	s.Equal(700, p.Cash)
}

// Perform tests

func (s *ControllerSuite) TestPerformDispatchesEveryAction() {
	s.newSolo()
	p := s.current()
	p.Cash = 5000

	steps := []struct {
		action model.Action
		check  func()
	}{
		{model.TravelAction{Destination: model.LocationBank}, func() { s.Equal(model.LocationBank, p.Location) }},
		{model.DepositAction{Amount: 1000}, func() { s.Equal(1000, p.Savings) }},
		{model.WithdrawAction{Amount: 500}, func() { s.Equal(500, p.Savings) }},
		{model.TakeLoanAction{Amount: 100}, func() { s.Equal(100, p.Loan) }},
		{model.RepayLoanAction{Amount: 100}, func() { s.Zero(p.Loan) }},
		{model.TravelAction{Destination: model.LocationDealership}, func() {}},
		{model.BuyCarAction{}, func() { s.True(p.HasCar) }},
		{model.TravelAction{Destination: model.LocationMarket}, func() {}},
		{model.BuyItemAction{Item: "Burger"}, func() { s.Equal(4500-3000-10, p.Cash) }},
		{model.TravelAction{Destination: model.LocationSchool}, func() {}},
		{model.TakeCourseAction{CourseID: "basic_skills"}, func() { s.True(p.IsEnrolled()) }},
		{model.StudyAction{}, func() { s.Equal(1, p.EducationCredits) }},
		{model.TravelAction{Destination: model.LocationWorkplace}, func() {}},
		{model.ApplyForJobAction{JobID: "janitor"}, func() { s.Equal(1, p.CareerLevel) }},
		{model.WorkShiftAction{}, func() { s.Equal(64, p.Weekly.Income) }},
		{model.TravelAction{Destination: model.LocationHome}, func() { s.Equal(1, p.Time) }},
		{model.EndTurnAction{}, func() { s.NotNil(s.controller.State().PendingSummary) }},
	}
	for _, step := range steps {
		s.Require().True(s.controller.Perform(step.action), step.action.String())
		step.check()
	}
}

func (s *ControllerSuite) TestPerformRelax() {
	s.newSolo()

	s.Require().True(s.controller.Perform(model.RelaxAction{}))
	s.Equal(56, s.current().Happiness)
}

func (s *ControllerSuite) TestPerformPassEndsTurn() {
	s.newSolo()

	s.Require().True(s.controller.Perform(model.PassAction{}))
	s.NotNil(s.controller.State().PendingSummary)
}
