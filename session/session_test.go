package session

import (
	"testing"

	"github.com/jellytv/jellytv/filesystem"
	"github.com/jellytv/jellytv/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
)

func init() {
	filesystem.SetMemMapFs()
	keyring.MockInit()
}

func resetConfig() {
	viper.Set(key.ServerURL, "")
	viper.Set(key.ServerUserID, "")
	viper.Set(key.ServerToken, "")
}

func TestSession(t *testing.T) {
	Convey("Given no stored session", t, func() {
		resetConfig()
		So(Delete(), ShouldBeNil)

		Convey("Load finds nothing", func() {
			stored, err := Load()
			So(err, ShouldBeNil)
			So(stored.IsAbsent(), ShouldBeTrue)
		})

		Convey("Resolve asks to log in", func() {
			_, err := Resolve()
			So(err, ShouldEqual, ErrNotLoggedIn)
		})

		Convey("Save rejects an incomplete session", func() {
			So(Save(&Session{Server: "http://media.local"}, "tok"), ShouldNotBeNil)
		})

		Convey("When a session is saved", func() {
			s := &Session{Server: "http://media.local", User: "u1", UserName: "alice", DeviceID: "dev-1"}
			So(Save(s, "tok"), ShouldBeNil)

			Convey("Load returns it with the keyring token", func() {
				stored, err := Load()
				So(err, ShouldBeNil)
				loaded := stored.MustGet()
				So(loaded.UserID(), ShouldEqual, "u1")
				So(loaded.UserName, ShouldEqual, "alice")
				So(loaded.Token(), ShouldEqual, "tok")
			})

			Convey("Resolve uses it, with server.url overriding the address", func() {
				viper.Set(key.ServerURL, "https://media.example.com")
				resolved, err := Resolve()
				So(err, ShouldBeNil)
				So(resolved.Server, ShouldEqual, "https://media.example.com")
				So(resolved.UserID(), ShouldEqual, "u1")
			})

			Convey("Delete forgets it", func() {
				So(Delete(), ShouldBeNil)
				stored, err := Load()
				So(err, ShouldBeNil)
				So(stored.IsAbsent(), ShouldBeTrue)
			})
		})
	})

	Convey("Given complete server configuration", t, func() {
		viper.Set(key.ServerURL, "http://cfg.local")
		viper.Set(key.ServerUserID, "u9")
		viper.Set(key.ServerToken, "api-key")
		defer resetConfig()

		resolved, err := Resolve()
		So(err, ShouldBeNil)
		So(resolved.Server, ShouldEqual, "http://cfg.local")
		So(resolved.UserID(), ShouldEqual, "u9")
		So(resolved.Token(), ShouldEqual, "api-key")
	})
}
