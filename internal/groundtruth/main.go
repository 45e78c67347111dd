package groundtruth

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path"
	"runtime"
	"sync"
	"time"

	"github.com/erikmannerfelt/xdem-data/internal/dem"
	"github.com/erikmannerfelt/xdem-data/internal/footprint"
	"github.com/erikmannerfelt/xdem-data/internal/manifest"
	"github.com/erikmannerfelt/xdem-data/internal/metajson"
	"github.com/erikmannerfelt/xdem-data/internal/terrain"
	"github.com/erikmannerfelt/xdem-data/internal/utils"
	"github.com/erikmannerfelt/xdem-data/internal/validate"
	"golang.org/x/sync/semaphore"
)

// nodata value of all generated rasters
const outputNoDataValue = -99999.0

const generatorVersion = "1.0.0"

// Run is the program's entrypoint
func Run(flagSet *flag.FlagSet) {

	var timer time.Time
	start := time.Now()

	outputPtr := flagSet.String("out", "", "Path to output directory")
	inputPtr := flagSet.String("in", "", "Path to DEM fixture directory")
	settingsPtr := flagSet.String("attribute_settings", "", "Path to attribute_settings.json file")

	flagSet.Parse(os.Args[2:])

	// make sure both flags are present
	if *outputPtr == "" || *inputPtr == "" {
		flagSet.PrintDefaults()
		os.Exit(1)
	}

	// make sure settings is either "" or a valid file
	if *settingsPtr != "" && !utils.IsFile(*settingsPtr) {
		log.Fatal(errors.New("AttributeSettings is not a valid file"))
	}

	// validate input directory structure
	err := validate.FixtureDirectory(*inputPtr)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Validated input directory structure")

	// create output directory if needed
	err = utils.EnsureDirectory(*outputPtr)
	if err != nil {
		log.Fatal(err)
	}

	// load meta.json
	timer = time.Now()
	fmt.Println("▶️  Loading meta.json")
	meta, err := metajson.Read(path.Join(*inputPtr, "meta.json"))
	if err != nil {
		log.Fatal(errors.New("Failed to read meta.json"))
	}
	fmt.Println("✔️  Loaded meta.json in", time.Now().Sub(timer).String())

	// load attribute settings
	timer = time.Now()
	fmt.Println("▶️  Loading attribute settings")
	attributes, opts := loadAttributeSettings(*settingsPtr)
	fmt.Println("✔️  Loaded attribute settings in", time.Now().Sub(timer).String())

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
	if meta.ElevationOffset != 0 {
		applyElevationOffset(&raster, meta.ElevationOffset)
	}
	fmt.Println("✔️  Loaded DEM in", time.Now().Sub(timer).String())

	// derive attributes
	outputs := make([]dem.EsriASCIIRaster, len(attributes))
	for i, attribute := range attributes {
		timer = time.Now()
		fmt.Printf("▶️  Deriving %s\n", attribute.File)

		entryOpts := opts
		entryOpts.Degrees = attribute.Degrees

		derived, err := terrain.Derive(raster, []string{attribute.Attribute}, entryOpts)
		if err != nil {
			log.Fatal(err)
		}

		outputs[i] = outputRaster(raster, derived[attribute.Attribute])
		fmt.Printf("✔️  Derived %s in %s\n", attribute.File, time.Now().Sub(timer).String())
	}

	// save rasters
	timer = time.Now()
	fmt.Println("▶️  Saving rasters")
	saveAll(*outputPtr, attributes, outputs)
	fmt.Println("✔️  Saved rasters in", time.Now().Sub(timer).String())

	// write manifest.json
	timer = time.Now()
	fmt.Println("▶️  Creating manifest.json")
	err = manifest.Write(*outputPtr, buildManifest(raster, meta, attributes))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Created manifest.json in", time.Now().Sub(timer).String())

	// write footprint.geojson
	timer = time.Now()
	fmt.Println("▶️  Creating footprint.geojson")
	err = footprint.Write(*outputPtr, raster, meta)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Created footprint.geojson in", time.Now().Sub(timer).String())

	fmt.Printf("\n    🎉  Finished in %s\n", time.Now().Sub(start).String())
}

// applyElevationOffset shifts all valid cells by the given offset
func applyElevationOffset(raster *dem.EsriASCIIRaster, offset float64) {
	for r := uint(0); r < raster.Nrows; r++ {
		for c := uint(0); c < raster.Ncols; c++ {
			value := raster.Data[r][c]
			if raster.IsNoData(value) || math.IsNaN(value) {
				continue
			}
			raster.Data[r][c] = value + offset
		}
	}
}

// outputRaster wraps a derived grid in a raster sharing the DEM's geometry
func outputRaster(source dem.EsriASCIIRaster, grid [][]float64) dem.EsriASCIIRaster {
	return dem.EsriASCIIRaster{
		Ncols:       source.Ncols,
		Nrows:       source.Nrows,
		Xcenter:     source.Xcenter,
		Ycenter:     source.Ycenter,
		Xcorner:     source.Xcorner,
		Ycorner:     source.Ycorner,
		CellSize:    source.CellSize,
		NoDataValue: outputNoDataValue,
		Data:        grid,
	}
}

var sem = semaphore.NewWeighted(int64(runtime.NumCPU()))

// saveAll writes all attribute rasters concurrently
func saveAll(outputDirectory string, attributes []attributeSpec, outputs []dem.EsriASCIIRaster) {
	wg := sync.WaitGroup{}
	errsMux := sync.Mutex{}
	var errs []error

	for i := range outputs {
		wg.Add(1)
		go func(filename string, raster dem.EsriASCIIRaster) {
			defer wg.Done()

			sem.Acquire(context.Background(), 1)
			defer sem.Release(1)

			err := dem.Save(path.Join(outputDirectory, filename), raster)
			if err != nil {
				errsMux.Lock()
				errs = append(errs, err)
				errsMux.Unlock()
			}
		}(attributes[i].File+".asc.gz", outputs[i])
	}

	wg.Wait()

	for _, err := range errs {
		log.Fatal(err)
	}
}

func buildManifest(raster dem.EsriASCIIRaster, meta metajson.MetaJSON, attributes []attributeSpec) manifest.Manifest {
	entries := make([]manifest.Entry, len(attributes))
	for i, attribute := range attributes {
		entries[i] = manifest.Entry{
			File:      attribute.File + ".asc.gz",
			Attribute: attribute.Attribute,
			Degrees:   attribute.Degrees,
			Nodata:    outputNoDataValue,
		}
	}

	return manifest.Manifest{
		Generator:   "xdem-data",
		Version:     generatorVersion,
		DisplayName: meta.DisplayName,
		Epsg:        meta.Epsg,
		Ncols:       raster.Ncols,
		Nrows:       raster.Nrows,
		CellSize:    raster.CellSize,
		Attributes:  entries,
	}
}
