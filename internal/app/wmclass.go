package app

import (
	"log"
	"time"

	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
)

// fixWindowClass waits for the window titled title to show up in the
// EWMH client list and gives it class and instance appID, so that task
// bars group and label it properly.
func fixWindowClass(title, appID string) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		log.Printf("Couldn't create XU xdg conn: %+v\n", err)
		return
	}
	defer xu.Conn().Close()

	for i := 0; i < 100; i++ {
		wnds, _ := ewmh.ClientListGet(xu)
		for _, w := range wnds {
			n, _ := ewmh.WmNameGet(xu, w)
			if n != title {
				continue
			}
			// an existing WM_CLASS is left alone
			if _, err := icccm.WmClassGet(xu, w); err == nil {
				return
			}

			class := icccm.WmClass{Class: appID, Instance: appID}
			if err := icccm.WmClassSet(xu, w, &class); err != nil {
				log.Printf("Couldn't set WM_CLASS: %v\n", err)
			}
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
	log.Printf("Window '%s' never showed up in the client list\n", title)
}
