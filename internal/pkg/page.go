package pkg

import (
	"net/url"
	"strconv"
)

// DefaultPageSize 列表接口固定页大小
const DefaultPageSize = 3

// Page 分页结果信封，缺页链接序列化为 null
type Page struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  any     `json:"results"`
}

// pageLink 在原请求 URL 上只替换 page 参数，过滤/搜索参数原样保留
func pageLink(u *url.URL, page int) *string {
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	link := u.Path + "?" + q.Encode()
	return &link
}

// Paginate 对已过滤的结果做页切分，并生成前后页链接
func Paginate(u *url.URL, page, total int, results func(offset, limit int) any) Page {
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * DefaultPageSize
	if offset > total {
		offset = total
	}
	limit := DefaultPageSize
	if offset+limit > total {
		limit = total - offset
	}

	p := Page{
		Count:   int64(total),
		Results: results(offset, limit),
	}
	if offset+limit < total {
		p.Next = pageLink(u, page+1)
	}
	if page > 1 {
		p.Previous = pageLink(u, page-1)
	}
	return p
}
