package preview

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path"
	"time"

	"github.com/erikmannerfelt/xdem-data/internal/dem"
	"github.com/erikmannerfelt/xdem-data/internal/metajson"
	"github.com/erikmannerfelt/xdem-data/internal/terrain"
	"github.com/erikmannerfelt/xdem-data/internal/utils"
	"github.com/erikmannerfelt/xdem-data/internal/validate"
	"github.com/nfnt/resize"
)

var sizes = []uint{128, 256, 512, 1024}

// Run is the program's entrypoint
func Run(flagSet *flag.FlagSet) {

	var timer time.Time
	start := time.Now()

	outputPtr := flagSet.String("out", "", "Path to output directory")
	inputPtr := flagSet.String("in", "", "Path to DEM fixture directory")
	attributePtr := flagSet.String("attribute", terrain.Hillshade, "Terrain attribute to render")

	flagSet.Parse(os.Args[2:])

	// make sure both flags are present
	if *outputPtr == "" || *inputPtr == "" {
		flagSet.PrintDefaults()
		os.Exit(1)
	}

	// make sure given output directory is a valid directory
	if !utils.IsDirectory(*outputPtr) {
		log.Fatal(errors.New("Output directory doesn't exist"))
	}

	// validate input directory structure
	err := validate.FixtureDirectory(*inputPtr)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Validated input directory structure")

	// load meta.json
	timer = time.Now()
	fmt.Println("▶️  Loading meta.json")
	meta, err := metajson.Read(path.Join(*inputPtr, "meta.json"))
	if err != nil {
		log.Fatal(errors.New("Failed to read meta.json"))
	}
	fmt.Println("✔️  Loaded meta.json in", time.Now().Sub(timer).String())

	// load DEM
	timer = time.Now()
	fmt.Println("▶️  Loading DEM")
	raster, err := dem.Read(path.Join(*inputPtr, "dem.asc.gz"))
	if err != nil {
		log.Fatal(err)
	}
	if meta.NodataValue != 0 {
		raster.NoDataValue = meta.NodataValue
	}
	fmt.Println("✔️  Loaded DEM in", time.Now().Sub(timer).String())

	// derive the attribute
	timer = time.Now()
	fmt.Printf("▶️  Deriving %s\n", *attributePtr)
	derived, err := terrain.Derive(raster, []string{*attributePtr}, terrain.DefaultOptions())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("✔️  Derived %s in %s\n", *attributePtr, time.Now().Sub(timer).String())

	// render to a grayscale image
	timer = time.Now()
	fmt.Println("▶️  Rendering preview image")
	previewImage := renderGray(derived[*attributePtr], *attributePtr == terrain.Hillshade)
	fmt.Println("✔️  Rendered preview image in", time.Now().Sub(timer).String())

	previewHeight := previewImage.Bounds().Dy()
	previewWidth := previewImage.Bounds().Dx()

	timer = time.Now()
	fmt.Println("▶️  Writing original preview image to output")
	saveImage(path.Join(*outputPtr, "preview.png"), previewImage)
	fmt.Println("✔️  Wrote original preview image in", time.Now().Sub(timer).String())

	for _, size := range sizes {
		timer = time.Now()
		fmt.Printf("▶️  Building x%d image\n", size)

		factor := float64(size) / float64(previewHeight)
		w := uint(float64(previewWidth) * factor)

		img := resize.Resize(w, size, previewImage, resize.MitchellNetravali)
		saveImage(path.Join(*outputPtr, fmt.Sprintf("preview_%d.png", size)), img)

		fmt.Printf("✔️  Built x%d in %s\n", size, time.Now().Sub(timer).String())
	}

	fmt.Printf("\n    🎉  Finished in %s\n", time.Now().Sub(start).String())
}

func saveImage(path string, img image.Image) {
	out, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	png.Encode(out, img)

	err = out.Close()
	if err != nil {
		log.Fatal(err)
	}
}
