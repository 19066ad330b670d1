package exceptions

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestExceptionsModule(t *testing.T) {
	Convey("Given a module without dsn", t, func() {
		module, err := Boot("")
		So(err, ShouldBeNil)

		Convey("capturing errors is harmless", func() {
			So(func() { module.Capture(errors.New("boom")) }, ShouldNotPanic)
			So(func() { module.Capture(nil) }, ShouldNotPanic)
		})

		Convey("recovered panics are reported and raised again", func() {
			So(func() {
				defer module.Recover()
				panic("boom")
			}, ShouldPanicWith, "boom")
		})
	})

	Convey("A malformed dsn is rejected", t, func() {
		_, err := Boot("::not a dsn")
		So(err, ShouldNotBeNil)
	})
}
