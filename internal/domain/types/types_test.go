package types_test

import (
	"encoding/json"
	"testing"

	"github.com/okian/pulse/internal/domain/types"
	"github.com/smartystreets/goconvey/convey"
)

func TestRecordJSON(t *testing.T) {
	convey.Convey("Given a record", t, func() {
		r := types.Record{
			Timestamp: "2026-08-24T10:00:00Z",
			Identity:  17,
			Category:  "click",
		}

		convey.Convey("When marshaled to JSON", func() {
			b, err := json.Marshal(r)

			convey.Convey("Then it should use the wire field names", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(string(b), convey.ShouldEqual,
					`{"timestamp":"2026-08-24T10:00:00Z","identity":17,"category":"click"}`)
			})
		})
	})
}

func TestActionCountJSON(t *testing.T) {
	convey.Convey("Given an aggregate row", t, func() {
		c := types.ActionCount{Action: "view", Count: 3}

		convey.Convey("When marshaled to JSON", func() {
			b, err := json.Marshal(c)

			convey.Convey("Then the action is exposed as category", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(string(b), convey.ShouldEqual, `{"category":"view","count":3}`)
			})
		})
	})
}
