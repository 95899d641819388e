// create-index-grps creates GROMACS index groups from a selections file, one
// 'expression # name' pair per line, by driving gmx make_ndx interactively.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/weitse-hsu/gmx-utils/gmx"
	"github.com/weitse-hsu/gmx-utils/ndx"
	"github.com/weitse-hsu/gmx-utils/util"
)

func main() {
	var (
		gro     = flag.String("f", "", "input GROMACS .gro file")
		selFile = flag.String("s", "selections.txt", "selections file, one 'expression # name' per line")
		inNDX   = flag.String("n", "", "existing index file to extend (optional)")
		outNDX  = flag.String("o", "index.ndx", "output index file")
		logFile = flag.String("l", "create_index_grps.log", "log file")
	)
	flag.Parse()
	if *gro == "" {
		fmt.Fprintln(os.Stderr, "create-index-grps: -f is required")
		flag.Usage()
		os.Exit(2)
	}

	log, err := util.NewLog(*logFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Close()
	log.Printf("Command line: %s\n", strings.Join(os.Args, " "))

	ctx := context.Background()
	if _, err := gmx.Version(ctx); err != nil {
		log.Error("GROMACS not available", "err", err)
		os.Exit(1)
	}

	groups, err := currentGroups(ctx, *gro, *inNDX)
	if err != nil {
		log.Error("counting current index groups", "err", err)
		os.Exit(1)
	}
	log.Printf("Current index groups (%d):\n%s", groups.Len(), groups.Summary())

	sels, err := gmx.ReadSelections(*selFile)
	if err != nil {
		log.Error("reading selections", "file", *selFile, "err", err)
		os.Exit(1)
	}
	prompt := gmx.Prompt(sels, groups.Len())
	log.Printf("Prompt input for make_ndx:\n%s", prompt)

	if _, err := gmx.MakeNDX(ctx, *gro, *inNDX, *outNDX, prompt); err != nil {
		log.Error("running make_ndx", "err", err)
		os.Exit(1)
	}

	newGroups, err := ndx.Read(*outNDX)
	if err != nil {
		log.Error("reading new index file", "file", *outNDX, "err", err)
		os.Exit(1)
	}
	log.Printf("Current index groups (%d):\n%s", newGroups.Len(), newGroups.Summary())
}

// currentGroups counts the groups make_ndx would start from: the given index
// file if there is one, otherwise the default groups make_ndx generates for
// the structure, probed through a throwaway index file.
func currentGroups(ctx context.Context, gro, inNDX string) (*ndx.Index, error) {
	if inNDX != "" {
		return ndx.Read(inNDX)
	}
	dir, err := os.MkdirTemp("", "create-index-grps")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)
	tmp := filepath.Join(dir, "temp.ndx")
	if _, err := gmx.MakeNDX(ctx, gro, "", tmp, "q\n"); err != nil {
		return nil, err
	}
	return ndx.Read(tmp)
}
