package game

import (
	"github.com/mcoot/fastlane/internal/model"
)

// Travel moves the current seat. Going home always succeeds: a time shortfall
// floors time at zero and is charged against the next turn.
func (c *Controller) Travel(dest model.Location) bool {
	return c.run(func(g *model.GameState, p *model.Player) bool {
		if !c.catalog.HasLocation(dest) {
			return c.journal.Reject(g, "%s: unknown location %q", p.Name, dest)
		}
		if p.Location == dest {
			return c.journal.Reject(g, "%s is already at the %s", p.Name, dest)
		}
		cost := c.rules.TravelHours(p)
		if p.Time < cost && dest != model.LocationHome {
			return c.journal.Reject(g, "%s needs %dh to travel to the %s, has %dh", p.Name, cost, dest, p.Time)
		}

		if p.Time < cost {
			p.TimeDeficit += cost - p.Time
			p.Time = 0
		} else {
			p.Time -= cost
		}
		p.Location = dest

		c.journal.PlayerChangedAll(g, p, model.EventLocationChanged, model.EventTimeChanged)
		c.journal.Record(g, model.LogAction, "%s travelled to the %s", p.Name, dest)
		return true
	})
}

// WorkShift works one shift at the current job
func (c *Controller) WorkShift() bool {
	return c.run(func(g *model.GameState, p *model.Player) bool {
		if p.Location != model.LocationWorkplace {
			return c.journal.Reject(g, "%s must be at the %s to work", p.Name, model.LocationWorkplace)
		}
		job, ok := c.catalog.Job(p.JobID)
		if !ok {
			return c.journal.Reject(g, "%s needs a job before working", p.Name)
		}
		if p.Time < job.ShiftHours {
			return c.journal.Reject(g, "%s needs %dh for a shift, has %dh", p.Name, job.ShiftHours, p.Time)
		}

		pay := job.ShiftPay()
		p.Cash += pay
		p.Weekly.Income += pay
		p.Time -= job.ShiftHours
		p.AdjustHappiness(-c.rules.WorkHappinessCost)

		c.journal.PlayerChangedAll(g, p, model.EventCashChanged, model.EventTimeChanged, model.EventHappinessChanged)
		c.journal.Record(g, model.LogCareer, "%s worked a shift as %s and earned $%d", p.Name, job.Title, pay)
		return true
	})
}

// ApplyForJob takes a job. Jobs require their education level and can only
// be one step above the best position held so far.
func (c *Controller) ApplyForJob(id model.JobID) bool {
	return c.run(func(g *model.GameState, p *model.Player) bool {
		job, ok := c.catalog.Job(id)
		if !ok {
			return c.journal.Reject(g, "%s: unknown job %q", p.Name, id)
		}
		if p.Location != model.LocationWorkplace {
			return c.journal.Reject(g, "%s must be at the %s to apply for a job", p.Name, model.LocationWorkplace)
		}
		if p.JobID == id {
			return c.journal.Reject(g, "%s already works as %s", p.Name, job.Title)
		}
		if p.EducationLevel < job.RequiredEducation {
			return c.journal.Reject(g, "%s needs education level %d to work as %s", p.Name, job.RequiredEducation, job.Title)
		}
		if job.Level > p.CareerLevel+1 {
			return c.journal.Reject(g, "%s needs more experience to work as %s", p.Name, job.Title)
		}
		if p.Time < c.rules.ApplyHours {
			return c.journal.Reject(g, "%s needs %dh to apply, has %dh", p.Name, c.rules.ApplyHours, p.Time)
		}

		p.Time -= c.rules.ApplyHours
		p.JobID = id
		p.CareerLevel = max(p.CareerLevel, job.Level)

		c.journal.PlayerChangedAll(g, p, model.EventTimeChanged, model.EventCareerChanged)
		c.journal.Record(g, model.LogCareer, "%s was hired as %s", p.Name, job.Title)
		return true
	})
}

// TakeCourse enrolls in the course for the next education level
func (c *Controller) TakeCourse(id model.CourseID) bool {
	return c.run(func(g *model.GameState, p *model.Player) bool {
		course, ok := c.catalog.Course(id)
		if !ok {
			return c.journal.Reject(g, "%s: unknown course %q", p.Name, id)
		}
		if p.Location != model.LocationSchool {
			return c.journal.Reject(g, "%s must be at the %s to enroll", p.Name, model.LocationSchool)
		}
		if p.IsEnrolled() {
			return c.journal.Reject(g, "%s is already enrolled in a course", p.Name)
		}
		if course.Level != p.EducationLevel+1 {
			return c.journal.Reject(g, "%s must complete level %d before %s", p.Name, course.Level-1, course.Name)
		}
		if p.Cash < course.Cost {
			return c.journal.Reject(g, "%s cannot afford %s ($%d, has $%d)", p.Name, course.Name, course.Cost, p.Cash)
		}
		if p.Time < c.rules.EnrollHours {
			return c.journal.Reject(g, "%s needs %dh to enroll, has %dh", p.Name, c.rules.EnrollHours, p.Time)
		}

		c.economy.Spend(p, course.Cost)
		p.Weekly.Expenses += course.Cost
		p.Time -= c.rules.EnrollHours
		p.EnrolledCourse = id
		p.EducationCredits = 0
		p.EducationCreditsGoal = course.Credits

		c.journal.PlayerChangedAll(g, p, model.EventCashChanged, model.EventTimeChanged)
		c.journal.Record(g, model.LogEducation, "%s enrolled in %s", p.Name, course.Name)
		return true
	})
}

// Study earns one credit towards the enrolled course, graduating when the
// goal is reached
func (c *Controller) Study() bool {
	return c.run(func(g *model.GameState, p *model.Player) bool {
		if p.Location != model.LocationSchool {
			return c.journal.Reject(g, "%s must be at the %s to study", p.Name, model.LocationSchool)
		}
		if !p.IsEnrolled() {
			return c.journal.Reject(g, "%s must enroll in a course before studying", p.Name)
		}
		course, ok := c.catalog.Course(p.EnrolledCourse)
		if !ok {
			return c.journal.Reject(g, "%s: unknown course %q", p.Name, p.EnrolledCourse)
		}
		if p.Time < course.StudyHours {
			return c.journal.Reject(g, "%s needs %dh to study, has %dh", p.Name, course.StudyHours, p.Time)
		}

		p.Time -= course.StudyHours
		p.EducationCredits++
		c.journal.PlayerChanged(g, p, model.EventTimeChanged)

		if p.EducationCredits < p.EducationCreditsGoal {
			c.journal.Record(g, model.LogEducation, "%s studied %s (%d/%d credits)",
				p.Name, course.Name, p.EducationCredits, p.EducationCreditsGoal)
			return true
		}

		p.EducationLevel = max(p.EducationLevel, course.Level)
		p.EnrolledCourse = ""
		p.EducationCredits = 0
		p.EducationCreditsGoal = 0
		p.Weekly.Graduations = append(p.Weekly.Graduations, course.Name)

		c.journal.Publish(model.EventGraduation, model.GraduationPayload{Player: p, Course: course})
		c.journal.PlayerChanged(g, p, model.EventEducationChanged)
		c.journal.Record(g, model.LogEducation, "%s graduated from %s", p.Name, course.Name)
		return true
	})
}

// Relax spends time at home to recover happiness
func (c *Controller) Relax() bool {
	return c.run(func(g *model.GameState, p *model.Player) bool {
		if p.Location != model.LocationHome {
			return c.journal.Reject(g, "%s must be at %s to relax", p.Name, model.LocationHome)
		}
		if p.Time < c.rules.RelaxHours {
			return c.journal.Reject(g, "%s needs %dh to relax, has %dh", p.Name, c.rules.RelaxHours, p.Time)
		}

		p.Time -= c.rules.RelaxHours
		p.AdjustHappiness(c.rules.RelaxHappiness)

		c.journal.PlayerChangedAll(g, p, model.EventTimeChanged, model.EventHappinessChanged)
		c.journal.Record(g, model.LogAction, "%s relaxed at home", p.Name)
		return true
	})
}

// BuyItem buys a catalog item at its selling location
func (c *Controller) BuyItem(name string) bool {
	return c.run(func(g *model.GameState, _ *model.Player) bool {
		return c.economy.BuyItem(g, name)
	})
}

// Deposit moves cash into savings
func (c *Controller) Deposit(amount int) bool {
	return c.run(func(g *model.GameState, _ *model.Player) bool {
		return c.economy.Deposit(g, amount)
	})
}

// Withdraw moves savings into cash
func (c *Controller) Withdraw(amount int) bool {
	return c.run(func(g *model.GameState, _ *model.Player) bool {
		return c.economy.Withdraw(g, amount)
	})
}

// TakeLoan borrows up to the loan cap
func (c *Controller) TakeLoan(amount int) bool {
	return c.run(func(g *model.GameState, _ *model.Player) bool {
		return c.economy.TakeLoan(g, amount)
	})
}

// RepayLoan pays the loan down from cash
func (c *Controller) RepayLoan(amount int) bool {
	return c.run(func(g *model.GameState, _ *model.Player) bool {
		return c.economy.RepayLoan(g, amount)
	})
}

// BuyCar buys a car at the dealership
func (c *Controller) BuyCar() bool {
	return c.run(func(g *model.GameState, _ *model.Player) bool {
		return c.economy.BuyCar(g)
	})
}
