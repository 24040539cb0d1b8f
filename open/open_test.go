package open

import (
	"testing"

	"github.com/jellytv/jellytv/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCommand(t *testing.T) {
	Convey("Given a URL", t, func() {
		url := "http://localhost:8096/web/#/details?id=s1"

		Convey("Linux uses xdg-open", func() {
			cmd, err := command(constant.Linux, url)
			So(err, ShouldBeNil)
			So(cmd.Args, ShouldResemble, []string{"xdg-open", url})
		})

		Convey("Darwin uses open", func() {
			cmd, err := command(constant.Darwin, url)
			So(err, ShouldBeNil)
			So(cmd.Args, ShouldResemble, []string{"open", url})
		})

		Convey("Unknown systems are rejected", func() {
			_, err := command("plan9", url)
			So(err, ShouldNotBeNil)
		})
	})
}
