package dataset

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// readXLSX 读取 Excel 文件的第一个 Sheet，返回表头与数据行
func readXLSX(path string) (headers []string, rows [][]string, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("文件没有任何 Sheet")
	}

	all, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("文件没有表头行")
	}

	return all[0], all[1:], nil
}
