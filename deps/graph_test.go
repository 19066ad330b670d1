package deps

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tryanzu/gomarketplace/core/shell"
)

func TestPopulate(t *testing.T) {
	Convey("Populating a shell module", t, func() {
		container, err := Bootstrap(configFile(t, "[storage]\ndriver = \"memory\"\n"))
		So(err, ShouldBeNil)
		Reset(func() { container.Close() })

		module := &shell.Module{}
		So(Populate(container, module), ShouldBeNil)

		So(module.Cart, ShouldEqual, container.Cart())
		So(module.Settings, ShouldEqual, container.Settings())
		So(module.Errors, ShouldEqual, container.Exceptions())
		So(module.Log, ShouldEqual, container.Log())
	})
}
