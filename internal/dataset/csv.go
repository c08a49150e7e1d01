package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
)

// readCSV 读取 CSV 文件，返回表头与数据行
func readCSV(path string) (headers []string, rows [][]string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	// 数据集各行列数可能不一致（尾部空列被裁剪），交给上层按下标容错
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("文件没有表头行")
	}

	return records[0], records[1:], nil
}
