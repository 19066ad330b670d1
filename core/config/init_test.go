package config

import (
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func writeFile(path, content string) {
	So(ioutil.WriteFile(path, []byte(content), 0644), ShouldBeNil)
}

func TestBootstrap(t *testing.T) {
	Convey("Bootstrapping config", t, func() {
		dir := t.TempDir()
		file := filepath.Join(dir, "config.toml")

		Convey("without a file falls back to the defaults", func() {
			c, err := Bootstrap(file)
			So(err, ShouldBeNil)
			view := c.View()
			So(view.UString("storage.driver"), ShouldEqual, "ledis")
			So(view.UInt("storage.ledis.db"), ShouldEqual, 0)
			So(view.UString("log.level"), ShouldEqual, "info")
		})

		Convey("with a file overrides only what it sets", func() {
			writeFile(file, "[storage]\ndriver = \"bunt\"\n\n[storage.redis]\nattempts = 2\n")
			c, err := Bootstrap(file)
			So(err, ShouldBeNil)
			view := c.View()
			So(view.UString("storage.driver"), ShouldEqual, "bunt")
			So(view.UInt("storage.redis.attempts"), ShouldEqual, 2)
			So(view.UString("storage.redis.addr"), ShouldEqual, "localhost:6379")
			So(view.UString("storage.ledis.dir"), ShouldEqual, "./data")
			So(c.UserCopy(), ShouldContainKey, "storage")
			So(c.UserCopy(), ShouldNotContainKey, "log")
		})

		Convey("with a broken file fails", func() {
			writeFile(file, "[storage\n")
			_, err := Bootstrap(file)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("STORAGE_LEDIS_DB", "3")

	Convey("Env variables win over file and defaults", t, func() {
		c, err := Bootstrap(filepath.Join(t.TempDir(), "config.toml"))
		So(err, ShouldBeNil)
		view := c.View()
		So(view.UString("storage.driver"), ShouldEqual, "memory")
		So(view.UInt("storage.ledis.db"), ShouldEqual, 3)
	})
}

func TestMergeUpdate(t *testing.T) {
	Convey("Setting a value", t, func() {
		file := filepath.Join(t.TempDir(), "config.toml")
		writeFile(file, "[log]\nlevel = \"debug\"\n")
		c, err := Bootstrap(file)
		So(err, ShouldBeNil)
		So(<-c.Reload, ShouldBeTrue)

		So(c.Set("storage.driver", "bunt"), ShouldBeNil)

		Convey("applies it and keeps earlier user values", func() {
			So(c.View().UString("storage.driver"), ShouldEqual, "bunt")
			So(c.View().UString("log.level"), ShouldEqual, "debug")
		})

		Convey("persists it for the next bootstrap", func() {
			again, err := Bootstrap(file)
			So(err, ShouldBeNil)
			So(again.View().UString("storage.driver"), ShouldEqual, "bunt")
		})

		Convey("signals a reload of its own", func() {
			var signaled bool
			select {
			case signaled = <-c.Reload:
			default:
			}
			So(signaled, ShouldBeTrue)
		})
	})
}

func TestNest(t *testing.T) {
	Convey("Dotted paths become nested maps", t, func() {
		So(Nest("a.b.c", 1), ShouldResemble, map[string]interface{}{
			"a": map[string]interface{}{"b": map[string]interface{}{"c": 1}},
		})
		So(Nest("a", "x"), ShouldResemble, map[string]interface{}{"a": "x"})
	})
}

func TestWatchFile(t *testing.T) {
	Convey("A watched file is merged again when written", t, func() {
		file := filepath.Join(t.TempDir(), "config.toml")
		writeFile(file, "[storage]\ndriver = \"ledis\"\n")
		c, err := Bootstrap(file)
		So(err, ShouldBeNil)
		<-c.Reload

		So(c.WatchFile(), ShouldBeNil)
		Reset(func() { c.Close() })

		writeFile(file, "[storage]\ndriver = \"redis\"\n")

		// Truncate and write may arrive as separate events.
		deadline := time.After(5 * time.Second)
	wait:
		for c.View().UString("storage.driver") != "redis" {
			select {
			case <-c.Reload:
			case <-deadline:
				break wait
			}
		}
		So(c.View().UString("storage.driver"), ShouldEqual, "redis")
	})
}
