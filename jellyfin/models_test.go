package jellyfin

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBaseItemDto(t *testing.T) {
	Convey("Given items decoded from the server", t, func() {
		var result BaseItemDtoQueryResult
		err := json.Unmarshal([]byte(`{
			"Items": [
				{"Id":"se1","Name":"Season 1","Type":"Season","IndexNumber":1},
				{"Id":"ep1","Name":"Pilot","Type":"Episode","IndexNumber":3,"ParentIndexNumber":1,
				 "RunTimeTicks":27000000000,"UserData":{"Played":true}},
				{"Id":"ep2","Name":"Special","Type":"Episode","IndexNumber":2}
			],
			"TotalRecordCount": 3,
			"StartIndex": 0
		}`), &result)
		So(err, ShouldBeNil)
		So(result.TotalRecordCount, ShouldEqual, 3)

		season, pilot, special := result.Items[0], result.Items[1], result.Items[2]

		Convey("Numbering follows the item kind", func() {
			So(season.Code(), ShouldEqual, "S01")
			So(pilot.Code(), ShouldEqual, "S01E03")
			So(special.Code(), ShouldEqual, "E02")
			So((&BaseItemDto{}).Code(), ShouldBeEmpty)
		})

		Convey("Runtime converts ticks", func() {
			So(pilot.Runtime(), ShouldEqual, 45*time.Minute)
			So(season.Runtime(), ShouldEqual, time.Duration(0))
		})

		Convey("Played reads the user data", func() {
			So(pilot.Played(), ShouldBeTrue)
			So(special.Played(), ShouldBeFalse)
		})

		Convey("Unset optional fields are omitted when encoded", func() {
			b := lo.Must(json.Marshal(BaseItemDto{Id: "x"}))
			So(string(b), ShouldEqual, `{"Id":"x"}`)
		})
	})
}
