package cli

import (
	"fmt"
	"strings"

	"github.com/cheggaaa/pb/v3"

	ckan "github.com/fat-lobyte/CKAN/lib"
)

const barTemplate string = `Checking {{ bar . "[" "#" "#" " " "]" }} {{ counters . }} {{ percent . "%.0f%%" }}`

// check reports which registered mods are incompatible with the
// installed game version. With no arguments every mod in the registry
// is checked.
func check(manager *ckan.Manager, args []string) {
	var manifests []*ckan.Manifest
	if len(args) == 0 {
		manifests = manager.Manifests()
	} else {
		for _, arg := range args {
			manifest, err := manager.GetManifest(arg)
			if err != nil {
				abort(err)
			}
			manifests = append(manifests, manifest)
		}
	}
	if len(manifests) == 0 {
		errorln("registry is empty, nothing to check")
		return
	}

	game := manager.GameVersion()
	installed := game.ToVersionRange()

	bar := pb.New(len(manifests))
	bar.SetTemplateString(barTemplate)
	bar.Start()

	var incompatible []*ckan.Manifest
	for _, manifest := range manifests {
		if !manifest.CompatRange().IsSupersetOf(installed) {
			incompatible = append(incompatible, manifest)
		}
		bar.Increment()
	}
	bar.Finish()

	if len(incompatible) == 0 {
		fmt.Printf("all %d mods are compatible with %s\n", len(manifests), game)
		return
	}

	for _, manifest := range incompatible {
		errorf("%s requires game version %s, installed is %s\n",
			manifest.Identifier, manifest.CompatRange(), game)
	}
	abort(fmt.Sprintf("%d of %d mods are incompatible", len(incompatible), len(manifests)))
}

// hull prints the bounding interval of the given versions and ranges.
// Arguments in interval notation are parsed as ranges, everything else
// as a version.
func hull(args []string) {
	if len(args) == 0 {
		printUsage("no versions were specified")
	}

	var ranges []*ckan.GameVersionRange
	for _, arg := range args {
		if strings.HasPrefix(arg, "[") || strings.HasPrefix(arg, "(") {
			r, err := ckan.ParseGameVersionRange(arg)
			if err != nil {
				abort(err)
			}
			ranges = append(ranges, r)
			continue
		}
		ver, err := ckan.ParseGameVersion(arg)
		if err != nil {
			abort(err)
		}
		ranges = append(ranges, ver.ToVersionRange())
	}

	combined, err := ckan.BoundingRange(ranges...)
	if err != nil {
		abort(err)
	}
	fmt.Println(combined)
}

// list prints every registered mod with its declared compatibility.
func list(manager *ckan.Manager, args []string) {
	for _, manifest := range manager.Manifests() {
		status := " "
		if manifest.WorksWith(manager.GameVersion()) {
			status = "*"
		}
		fmt.Printf("%s %s %s\n", status, manifest.Identifier, manifest.CompatRange())
	}
}

// version prints the detected game version.
func version(manager *ckan.Manager, args []string) {
	fmt.Println(manager.GameVersion())
}
