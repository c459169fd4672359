package najia_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/najia"
	"github.com/aretw0/najia/pkg/adapters/memory"
	"github.com/aretw0/najia/pkg/domain"
)

// ExampleEngine_Compile casts 地山谦 with a moving fifth line under an
// explicit month branch and day pillar.
func ExampleEngine_Compile() {
	eng := najia.New(najia.WithCalendar(memory.NewStrictCalendar()))

	h, err := eng.Compile(context.Background(), domain.Request{
		Lines: []int{2, 2, 1, 2, 4, 2},
		Month: "寅",
		Day:   "甲戌",
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s (%s palace), world %d, response %d\n", h.Name, h.Palace, h.World.World, h.World.Response)
	for i := 5; i >= 0; i-- {
		fmt.Printf("%s %s %s\n", h.Spirits[i], h.Relatives[i], h.Labels[i])
	}
	if tr, ok := h.Transformed.Get(); ok {
		fmt.Println("changes into", tr.Name)
	}
	// Output:
	// 地山谦 (兑 palace), world 5, response 2
	// 玄武 兄弟 癸酉金
	// 白虎 子孙 癸亥水
	// 螣蛇 父母 癸丑土
	// 勾陈 兄弟 丙申金
	// 朱雀 官鬼 丙午火
	// 青龙 父母 丙辰土
	// changes into 水山蹇
}
