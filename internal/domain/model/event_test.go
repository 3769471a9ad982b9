package model_test

import (
	"testing"
	"time"

	model "github.com/okian/pulse/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestEvent(t *testing.T) {
	convey.Convey("Given an Event struct", t, func() {
		convey.Convey("When creating a new event", func() {
			ts := time.Now()
			event := model.Event{
				ID:         "event-123",
				CustomerID: 42,
				Action:     model.ActionView,
				TS:         ts,
			}

			convey.Convey("Then it should have the correct values", func() {
				convey.So(event.ID, convey.ShouldEqual, "event-123")
				convey.So(event.CustomerID, convey.ShouldEqual, 42)
				convey.So(event.Action, convey.ShouldEqual, "view")
				convey.So(event.TS, convey.ShouldEqual, ts)
			})
		})

		convey.Convey("When creating an event with zero values", func() {
			event := model.Event{}

			convey.Convey("Then it should have default values", func() {
				convey.So(event.ID, convey.ShouldEqual, "")
				convey.So(event.CustomerID, convey.ShouldEqual, 0)
				convey.So(event.Action, convey.ShouldEqual, "")
				convey.So(event.TS, convey.ShouldEqual, time.Time{})
			})
		})
	})
}

func TestDefaultActions(t *testing.T) {
	convey.Convey("Given the default action set", t, func() {
		actions := model.DefaultActions()

		convey.Convey("Then it should contain the fixed labels", func() {
			convey.So(actions, convey.ShouldResemble, []string{"view", "click", "purchase", "signup"})
		})

		convey.Convey("Then it should not contain the seed label", func() {
			convey.So(actions, convey.ShouldNotContain, model.ActionStart)
		})

		convey.Convey("Then mutating the returned slice should not affect later calls", func() {
			actions[0] = "mutated"
			convey.So(model.DefaultActions()[0], convey.ShouldEqual, "view")
		})
	})
}
