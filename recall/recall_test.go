package recall

import (
	"testing"

	"github.com/dynstack-cli/dynstack/filesystem"
	"github.com/dynstack-cli/dynstack/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.RecallSuggestions, true)
	viper.Set(key.RecallLimit, 20)
}

func TestRecall(t *testing.T) {
	Convey("Given remembered payloads", t, func() {
		So(Remember("deploy-staging", 1), ShouldBeNil)
		So(Remember("deploy-production", 10), ShouldBeNil)
		So(Remember("rollback", 1), ShouldBeNil)

		Convey("Suggest returns the best match for a partial input", func() {
			s := Suggest("deploy")
			So(s.IsPresent(), ShouldBeTrue)
			So(s.MustGet(), ShouldStartWith, "deploy")
		})

		Convey("SuggestMany excludes non-matching payloads", func() {
			suggestions := SuggestMany("deploy")
			So(len(suggestions), ShouldBeGreaterThanOrEqualTo, 2)
			So(suggestions, ShouldNotContain, "rollback")
		})

		Convey("Ties on fuzzy rank break by use count", func() {
			So(Remember("alpha-one", 1), ShouldBeNil)
			So(Remember("alpha-two", 50), ShouldBeNil)

			suggestions := SuggestMany("alpha-")
			So(len(suggestions), ShouldBeGreaterThanOrEqualTo, 2)
			So(suggestions[0], ShouldEqual, "alpha-two")
		})

		Convey("Suggestions are disabled by configuration", func() {
			viper.Set(key.RecallSuggestions, false)
			So(SuggestMany("deploy"), ShouldBeEmpty)
			So(Suggest("deploy").IsAbsent(), ShouldBeTrue)
			viper.Set(key.RecallSuggestions, true)
		})

		Convey("Input is trimmed before matching", func() {
			So(sanitize("  rollback  "), ShouldEqual, "rollback")
		})

		Convey("The limit caps the suggestion count", func() {
			viper.Set(key.RecallLimit, 1)
			So(len(SuggestMany("deploy")), ShouldEqual, 1)
			viper.Set(key.RecallLimit, 20)
		})

		Convey("A limit above the match count returns every match", func() {
			viper.Set(key.RecallLimit, 100)
			So(len(SuggestMany("rollback")), ShouldEqual, 1)
			viper.Set(key.RecallLimit, 20)
		})

		Convey("Remember immediately refreshes suggestions for a cached partial", func() {
			So(SuggestMany("zulu"), ShouldBeEmpty)
			So(Remember("zulu-payload", 1), ShouldBeNil)
			So(SuggestMany("zulu"), ShouldContain, "zulu-payload")
		})
	})
}
