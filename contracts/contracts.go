/*
Package contracts provides access to compiled FlightSurety contracts.

Contracts are compiled by `make build` into contract.nef and manifest.json
files stored in the contract directories, so a repository checkout (or any
fs.FS with the same layout) serves as the source of deployable artifacts.
*/
package contracts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/nspcc-dev/neo-go/pkg/io"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
)

const (
	// DataDir is a directory of Data contract.
	DataDir = "suretydata"
	// AppDir is a directory of App contract.
	AppDir = "suretyapp"

	nefName      = "contract.nef"
	manifestName = "manifest.json"
)

// Contract groups information about Neo contract stored in the current package.
type Contract struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

var (
	errInvalidNEF      = errors.New("invalid NEF")
	errInvalidManifest = errors.New("invalid manifest")

	// deployOrder lists contracts in the order they're supposed to be
	// deployed: App contract needs Data contract address.
	deployOrder = []string{
		DataDir,
		AppDir,
	}
)

// Get returns FlightSurety contracts stored in the given fs.FS in the order
// they're supposed to be deployed starting from Data contract.
func Get(fsys fs.FS) ([]Contract, error) {
	return read(fsys, deployOrder)
}

// GetFromDir is the same as Get, but reads contracts from the directory of
// the local file system, usually the `contracts` directory of the repository.
func GetFromDir(dir string) ([]Contract, error) {
	return Get(os.DirFS(dir))
}

// read same as Get but allows to specify directories.
func read(fsys fs.FS, dirs []string) ([]Contract, error) {
	var res = make([]Contract, 0, len(dirs))

	for i := range dirs {
		c, err := readContractFromDir(fsys, dirs[i])
		if err != nil {
			return nil, fmt.Errorf("read contract %s: %w", dirs[i], err)
		}

		res = append(res, c)
	}

	return res, nil
}

func readContractFromDir(fsys fs.FS, dir string) (Contract, error) {
	var c Contract

	// fs.FS uses "/" even on Windows, so filepath.Join() is not applicable.
	fNEF, err := fsys.Open(dir + "/" + nefName)
	if err != nil {
		return c, fmt.Errorf("open NEF: %w", err)
	}
	defer fNEF.Close()

	fManifest, err := fsys.Open(dir + "/" + manifestName)
	if err != nil {
		return c, fmt.Errorf("open manifest: %w", err)
	}
	defer fManifest.Close()

	bReader := io.NewBinReaderFromIO(fNEF)
	c.NEF.DecodeBinary(bReader)
	if bReader.Err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidNEF, bReader.Err)
	}

	err = json.NewDecoder(fManifest).Decode(&c.Manifest)
	if err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidManifest, err)
	}

	return c, nil
}
